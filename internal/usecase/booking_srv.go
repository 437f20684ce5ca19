package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/internal/dto/request"
	"car-rental/internal/dto/response"
	"car-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type BookingService interface {
	Quote(ctx context.Context, req *request.QuoteRequest) (*response.QuoteResponse, error)
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingConfirmation, error)
	GetUserBookings(ctx context.Context, userID string) ([]response.BookingResponse, error)
	GetBookingByID(ctx context.Context, userID, bookingID string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo         *repository.Repository
	confirmDelay time.Duration
	log          *zap.Logger
}

func NewBookingService(repo *repository.Repository, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:         repo,
		confirmDelay: time.Duration(config.Booking.ConfirmDelayMS) * time.Millisecond,
		log:          log.With(zap.String("service", "booking")),
	}
}

// Quote computes the booking window for a vehicle: chronology repair, whole
// day count, total price. It never rejects a reversed date pair.
func (s *bookingService) Quote(ctx context.Context, req *request.QuoteRequest) (*response.QuoteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Quote validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, req.VehicleID)
	if err != nil {
		s.log.Error("Failed to get vehicle for quote",
			zap.Error(err),
			zap.String("vehicle_id", req.VehicleID),
		)
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("vehicle not found")
	}

	pickup, returnDate, err := parseWindow(req.PickupDate, req.ReturnDate)
	if err != nil {
		return nil, err
	}

	pickup, returnDate = repairDates(pickup, returnDate, req.Edited)
	days, total := bookingWindow(pickup, returnDate, vehicle.Price)

	return &response.QuoteResponse{
		VehicleID:  vehicle.ID,
		PickupDate: pickup.Format(dateLayout),
		ReturnDate: returnDate.Format(dateLayout),
		Days:       days,
		DailyRate:  vehicle.Price,
		TotalPrice: total,
	}, nil
}

// CreateBooking is the mock submission endpoint: it validates the form,
// prices the window, waits the configured confirmation delay and then
// succeeds unconditionally. There is no inventory check and no payment.
func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingConfirmation, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, req.VehicleID)
	if err != nil {
		s.log.Error("Failed to get vehicle for booking",
			zap.Error(err),
			zap.String("vehicle_id", req.VehicleID),
		)
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("vehicle not found")
	}

	pickup, returnDate, err := parseWindow(req.PickupDate, req.ReturnDate)
	if err != nil {
		return nil, err
	}

	pickup, returnDate = repairDates(pickup, returnDate, "")
	days, total := bookingWindow(pickup, returnDate, vehicle.Price)

	// Simulated processing latency in place of a real payment/backend call.
	// Cancellable so a dropped request doesn't linger.
	if s.confirmDelay > 0 {
		timer := time.NewTimer(s.confirmDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	booking := &entity.Booking{
		ID:         "booking-" + uuid.New().String(),
		VehicleID:  vehicle.ID,
		UserID:     userID,
		StartDate:  pickup,
		EndDate:    returnDate,
		Status:     entity.BookingStatusConfirmed,
		TotalPrice: total,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to store booking",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking confirmed",
		zap.String("booking_id", booking.ID),
		zap.String("vehicle_id", vehicle.ID),
		zap.String("user_id", userID),
		zap.Int("days", days),
		zap.Float64("total_price", total),
	)

	return &response.BookingConfirmation{
		Booking:  response.BookingToResponse(booking, vehicle),
		Redirect: "/dashboard",
	}, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	result := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		// Weak reference: the vehicle may be gone from the catalog and the
		// booking is still listed.
		vehicle, err := s.repo.Vehicle.FindByID(ctx, booking.VehicleID)
		if err != nil {
			s.log.Warn("Failed to resolve vehicle for booking",
				zap.Error(err),
				zap.String("booking_id", booking.ID),
				zap.String("vehicle_id", booking.VehicleID),
			)
		}
		result[i] = response.BookingToResponse(booking, vehicle)
	}

	return result, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, userID, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to get booking by ID",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("get booking by id: %w", err)
	}

	// A foreign booking reads as absent; existence is not leaked.
	if booking == nil || booking.UserID != userID {
		return nil, fmt.Errorf("booking not found")
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, booking.VehicleID)
	if err != nil {
		s.log.Warn("Failed to resolve vehicle for booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID),
		)
	}

	resp := response.BookingToResponse(booking, vehicle)
	return &resp, nil
}

// ==================== WINDOW CALCULATION ====================

func parseWindow(pickupStr, returnStr string) (time.Time, time.Time, error) {
	pickup, err := time.Parse(dateLayout, pickupStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid pickup date: %w", err)
	}

	returnDate, err := time.Parse(dateLayout, returnStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid return date: %w", err)
	}

	return pickup, returnDate, nil
}

// repairDates enforces chronological order the way the booking form does:
// the field that was just edited wins and drags the other one to itself.
// A reversed pair is silently repaired, never rejected.
func repairDates(pickup, returnDate time.Time, edited string) (time.Time, time.Time) {
	if !pickup.After(returnDate) {
		return pickup, returnDate
	}

	if edited == "return" {
		// Return moved earlier than pickup: pickup forced down
		return returnDate, returnDate
	}

	// Pickup moved later than return: return forced up
	return pickup, pickup
}

// bookingWindow derives the (duration, total price) pair. Duration is the
// ceiling of the absolute difference in whole days, floored to one: a
// booking is never free.
func bookingWindow(pickup, returnDate time.Time, dailyRate float64) (int, float64) {
	diff := returnDate.Sub(pickup)
	if diff < 0 {
		diff = -diff
	}

	days := int(math.Ceil(diff.Hours() / 24))
	if days == 0 {
		days = 1
	}

	return days, float64(days) * dailyRate
}
