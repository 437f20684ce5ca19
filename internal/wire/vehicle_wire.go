package wire

import (
	"car-rental/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireVehicle(r chi.Router, vehicleHandler *adaptor.VehicleHandler) {
	// Catalog is public: anyone can browse and filter
	r.Get("/api/vehicles", vehicleHandler.GetVehicles)
	r.Get("/api/vehicles/{id}", vehicleHandler.GetVehicleByID)
}
