package adaptor

import (
	"car-rental/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Vehicle  *VehicleHandler
	Category *CategoryHandler
	Booking  *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Vehicle:  NewVehicleHandler(service.Vehicle, log),
		Category: NewCategoryHandler(service.Category, log),
		Booking:  NewBookingHandler(service.Booking, log),
	}
}
