package repository

import (
	"context"
	"sort"
	"sync"

	"car-rental/internal/data/entity"

	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, bookingID string) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID string) ([]*entity.Booking, error)
}

// bookingRepository keeps bookings in process memory only; confirmed bookings
// are appended here so the dashboard can list them, but nothing survives a
// restart. The mutex guards against concurrent HTTP requests.
type bookingRepository struct {
	mu       sync.RWMutex
	bookings []*entity.Booking
	log      *zap.Logger
}

func NewBookingRepository(seed []*entity.Booking, log *zap.Logger) BookingRepository {
	bookings := make([]*entity.Booking, len(seed))
	copy(bookings, seed)

	return &bookingRepository{
		bookings: bookings,
		log:      log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	r.bookings = append(r.bookings, booking)
	r.mu.Unlock()

	r.log.Debug("Booking stored",
		zap.String("booking_id", booking.ID),
		zap.String("user_id", booking.UserID),
	)

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, booking := range r.bookings {
		if booking.ID == bookingID {
			return booking, nil
		}
	}

	return nil, nil
}

// FindByUserID returns the user's bookings newest first.
func (r *bookingRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*entity.Booking
	for _, booking := range r.bookings {
		if booking.UserID == userID {
			result = append(result, booking)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}
