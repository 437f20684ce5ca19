package repository

import (
	"context"

	"car-rental/internal/data/entity"

	"go.uber.org/zap"
)

type VehicleRepository interface {
	FindAll(ctx context.Context) ([]*entity.Vehicle, error)
	FindByID(ctx context.Context, vehicleID string) (*entity.Vehicle, error)
}

type vehicleRepository struct {
	vehicles []*entity.Vehicle
	byID     map[string]*entity.Vehicle
	log      *zap.Logger
}

func NewVehicleRepository(vehicles []*entity.Vehicle, log *zap.Logger) VehicleRepository {
	byID := make(map[string]*entity.Vehicle, len(vehicles))
	for _, vehicle := range vehicles {
		byID[vehicle.ID] = vehicle
	}

	return &vehicleRepository{
		vehicles: vehicles,
		byID:     byID,
		log:      log.With(zap.String("repository", "vehicle")),
	}
}

// FindAll returns a fresh slice in fixture order so callers can filter and
// sort without reordering the source collection.
func (r *vehicleRepository) FindAll(ctx context.Context) ([]*entity.Vehicle, error) {
	result := make([]*entity.Vehicle, len(r.vehicles))
	copy(result, r.vehicles)
	return result, nil
}

func (r *vehicleRepository) FindByID(ctx context.Context, vehicleID string) (*entity.Vehicle, error) {
	vehicle, ok := r.byID[vehicleID]
	if !ok {
		return nil, nil
	}
	return vehicle, nil
}
