package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/internal/dto/request"
	"car-rental/internal/dto/response"
	"car-rental/pkg/utils"

	"go.uber.org/zap"
)

type VehicleService interface {
	GetVehicles(ctx context.Context, query *request.CatalogQuery) (*response.VehicleListResponse, error)
	GetVehicleByID(ctx context.Context, vehicleID string) (*response.VehicleDetailResponse, error)
}

type vehicleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewVehicleService(repo *repository.Repository, log *zap.Logger) VehicleService {
	return &vehicleService{
		repo: repo,
		log:  log.With(zap.String("service", "vehicle")),
	}
}

// GetVehicles runs the catalog query: every active filter ANDed together,
// then a stable sort. The result is always a fresh slice; the fixture
// collection is never reordered.
func (s *vehicleService) GetVehicles(ctx context.Context, query *request.CatalogQuery) (*response.VehicleListResponse, error) {
	if errs := utils.ValidateStruct(query); len(errs) > 0 {
		s.log.Warn("Catalog query validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vehicles, err := s.repo.Vehicle.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get vehicles", zap.Error(err))
		return nil, fmt.Errorf("get vehicles: %w", err)
	}

	result := filterVehicles(vehicles, query)
	sortVehicles(result, query.Sort)

	s.log.Info("Catalog queried",
		zap.String("query", query.Query),
		zap.String("category", query.Category),
		zap.String("sort", query.Sort),
		zap.Int("matches", len(result)),
	)

	return response.NewVehicleListResponse(result), nil
}

func (s *vehicleService) GetVehicleByID(ctx context.Context, vehicleID string) (*response.VehicleDetailResponse, error) {
	vehicle, err := s.repo.Vehicle.FindByID(ctx, vehicleID)
	if err != nil {
		s.log.Error("Failed to get vehicle by ID",
			zap.Error(err),
			zap.String("vehicle_id", vehicleID),
		)
		return nil, fmt.Errorf("get vehicle by id: %w", err)
	}

	if vehicle == nil {
		return nil, fmt.Errorf("vehicle not found")
	}

	detail := response.VehicleToDetailResponse(vehicle)
	return &detail, nil
}

// filterVehicles applies the text, category and price filters conjunctively
// and returns a new slice. The text filter is a case-insensitive substring
// match against name, brand and model; a vehicle passes if any of the three
// contains the query.
func filterVehicles(vehicles []*entity.Vehicle, query *request.CatalogQuery) []*entity.Vehicle {
	text := strings.ToLower(strings.TrimSpace(query.Query))

	result := make([]*entity.Vehicle, 0, len(vehicles))
	for _, vehicle := range vehicles {
		if text != "" && !matchesText(vehicle, text) {
			continue
		}
		if query.Category != "" && vehicle.CategoryID != query.Category {
			continue
		}
		if vehicle.Price < query.PriceMin || vehicle.Price > query.PriceMax {
			continue
		}
		result = append(result, vehicle)
	}

	return result
}

func matchesText(vehicle *entity.Vehicle, query string) bool {
	return strings.Contains(strings.ToLower(vehicle.Name), query) ||
		strings.Contains(strings.ToLower(vehicle.Brand), query) ||
		strings.Contains(strings.ToLower(vehicle.Model), query)
}

// sortVehicles orders in place with a stable sort. "recommended" keeps the
// incoming (fixture) order.
func sortVehicles(vehicles []*entity.Vehicle, key string) {
	switch key {
	case request.SortPriceAsc:
		sort.SliceStable(vehicles, func(i, j int) bool {
			return vehicles[i].Price < vehicles[j].Price
		})
	case request.SortPriceDesc:
		sort.SliceStable(vehicles, func(i, j int) bool {
			return vehicles[i].Price > vehicles[j].Price
		})
	case request.SortRatingDesc:
		sort.SliceStable(vehicles, func(i, j int) bool {
			return vehicles[i].Rating > vehicles[j].Rating
		})
	case request.SortYearDesc:
		sort.SliceStable(vehicles, func(i, j int) bool {
			return vehicles[i].Year > vehicles[j].Year
		})
	}
}
