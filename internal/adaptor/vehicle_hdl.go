package adaptor

import (
	"math"
	"net/http"
	"strings"

	"car-rental/internal/dto/request"
	"car-rental/internal/usecase"
	"car-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type VehicleHandler struct {
	service usecase.VehicleService
	log     *zap.Logger
}

func NewVehicleHandler(service usecase.VehicleService, log *zap.Logger) *VehicleHandler {
	return &VehicleHandler{
		service: service,
		log:     log.With(zap.String("handler", "vehicle")),
	}
}

// GetVehicles handles GET /api/vehicles
//
// Query params: q, category, price_min, price_max, sort. Unset price bounds
// default to the full range so the price filter is always well-formed.
func (h *VehicleHandler) GetVehicles(w http.ResponseWriter, r *http.Request) {
	query := request.DefaultCatalogQuery()

	params := r.URL.Query()
	query.Query = params.Get("q")
	query.Category = params.Get("category")
	query.PriceMin = utils.ParseFloat(params.Get("price_min"), 0)
	query.PriceMax = utils.ParseFloat(params.Get("price_max"), math.MaxFloat64)
	if sortKey := params.Get("sort"); sortKey != "" {
		query.Sort = sortKey
	}

	vehicles, err := h.service.GetVehicles(r.Context(), &query)
	if err != nil {
		h.handleServiceError(w, err, "get vehicles")
		return
	}

	utils.ResponseSuccess(w, "success", vehicles)
}

// GetVehicleByID handles GET /api/vehicles/{id}
func (h *VehicleHandler) GetVehicleByID(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "id")
	if vehicleID == "" {
		utils.ResponseBadRequest(w, "Vehicle ID is required", nil)
		return
	}

	vehicle, err := h.service.GetVehicleByID(r.Context(), vehicleID)
	if err != nil {
		h.handleServiceError(w, err, "get vehicle by ID")
		return
	}

	utils.ResponseSuccess(w, "Vehicle retrieved successfully", vehicle)
}

// handleServiceError maps service errors to responses for vehicle operations
func (h *VehicleHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"), strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad input",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
