package usecase

import (
	"car-rental/internal/data/repository"
	"car-rental/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Vehicle  VehicleService
	Category CategoryService
	Booking  BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Vehicle:  NewVehicleService(repo, log),
		Category: NewCategoryService(repo.Category, log),
		Booking:  NewBookingService(repo, config, log),
	}
}
