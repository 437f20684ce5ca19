package repository

import (
	"car-rental/internal/data/entity"
	"car-rental/pkg/kv"

	"go.uber.org/zap"
)

type Repository struct {
	Vehicle  VehicleRepository
	Category CategoryRepository
	Booking  BookingRepository
	User     UserRepository
	Session  SessionRepository
}

// NewRepository wires every repository over its backing store: the catalog
// repos over the startup fixture, the booking repo over an in-memory list
// seeded from the fixture, and the user/session repos over the kv snapshot
// store. userKey is the fixed key the single user snapshot lives under.
func NewRepository(
	vehicles []*entity.Vehicle,
	categories []*entity.Category,
	bookings []*entity.Booking,
	store kv.Store,
	userKey string,
	log *zap.Logger,
) *Repository {
	return &Repository{
		Vehicle:  NewVehicleRepository(vehicles, log),
		Category: NewCategoryRepository(categories, log),
		Booking:  NewBookingRepository(bookings, log),
		User:     NewUserRepository(store, userKey, log),
		Session:  NewSessionRepository(store, log),
	}
}
