package usecase

import (
	"context"
	"testing"
	"time"

	"car-rental/internal/dto/request"
	"car-rental/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestBookingService(confirmDelayMS int) BookingService {
	config := &utils.Config{
		Booking: utils.BookingConfig{ConfirmDelayMS: confirmDelayMS},
	}
	return NewBookingService(newTestRepository(), config, zap.NewNop())
}

func validCreateRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		VehicleID:     "car-2",
		PickupDate:    "2024-02-01",
		ReturnDate:    "2024-02-04",
		FullName:      "Jordan Smith",
		Email:         "jordan@example.com",
		Phone:         "5551234567",
		Address:       "12 Harbor Street",
		PaymentMethod: "credit",
	}
}

func TestBookingWindow(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name      string
		pickup    time.Time
		returnDay time.Time
		rate      float64
		wantDays  int
		wantTotal float64
	}{
		{"two nights", day(1), day(3), 100, 2, 200},
		{"same day is one day", day(5), day(5), 100, 1, 100},
		{"single night", day(1), day(2), 250, 1, 250},
		{"reversed pair uses absolute difference", day(10), day(7), 50, 3, 150},
		{"week", day(1), day(8), 320, 7, 2240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, total := bookingWindow(tt.pickup, tt.returnDay, tt.rate)
			assert.Equal(t, tt.wantDays, days)
			assert.InDelta(t, tt.wantTotal, total, 0.001)
		})
	}
}

func TestRepairDates(t *testing.T) {
	early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	// Ordered pair passes through untouched
	p, r := repairDates(early, late, "pickup")
	assert.Equal(t, early, p)
	assert.Equal(t, late, r)

	// Pickup edited past return drags return forward
	p, r = repairDates(late, early, "pickup")
	assert.Equal(t, late, p)
	assert.Equal(t, late, r)

	// Return edited before pickup drags pickup back
	p, r = repairDates(late, early, "return")
	assert.Equal(t, early, p)
	assert.Equal(t, early, r)

	// Default attribution is the pickup field
	p, r = repairDates(late, early, "")
	assert.Equal(t, late, p)
	assert.Equal(t, late, r)
}

func TestQuote(t *testing.T) {
	svc := newTestBookingService(0)

	// car-1 rents at 250/day
	quote, err := svc.Quote(context.Background(), &request.QuoteRequest{
		VehicleID:  "car-1",
		PickupDate: "2024-01-01",
		ReturnDate: "2024-01-03",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, quote.Days)
	assert.InDelta(t, 250, quote.DailyRate, 0.001)
	assert.InDelta(t, 500, quote.TotalPrice, 0.001)
	assert.Equal(t, "2024-01-01", quote.PickupDate)
	assert.Equal(t, "2024-01-03", quote.ReturnDate)
}

func TestQuote_SameDayIsOneDay(t *testing.T) {
	svc := newTestBookingService(0)

	quote, err := svc.Quote(context.Background(), &request.QuoteRequest{
		VehicleID:  "car-1",
		PickupDate: "2024-01-05",
		ReturnDate: "2024-01-05",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, quote.Days)
	assert.InDelta(t, 250, quote.TotalPrice, 0.001)
}

func TestQuote_RepairsReversedDates(t *testing.T) {
	svc := newTestBookingService(0)

	// Pickup edited beyond return: return follows it
	quote, err := svc.Quote(context.Background(), &request.QuoteRequest{
		VehicleID:  "car-1",
		PickupDate: "2024-01-05",
		ReturnDate: "2024-01-01",
		Edited:     "pickup",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", quote.PickupDate)
	assert.Equal(t, "2024-01-05", quote.ReturnDate)
	assert.Equal(t, 1, quote.Days)

	// Return edited before pickup: pickup follows it
	quote, err = svc.Quote(context.Background(), &request.QuoteRequest{
		VehicleID:  "car-1",
		PickupDate: "2024-01-05",
		ReturnDate: "2024-01-01",
		Edited:     "return",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", quote.PickupDate)
	assert.Equal(t, "2024-01-01", quote.ReturnDate)
}

func TestQuote_BadInput(t *testing.T) {
	svc := newTestBookingService(0)

	_, err := svc.Quote(context.Background(), &request.QuoteRequest{
		VehicleID:  "car-99",
		PickupDate: "2024-01-01",
		ReturnDate: "2024-01-03",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = svc.Quote(context.Background(), &request.QuoteRequest{
		VehicleID:  "car-1",
		PickupDate: "01/01/2024",
		ReturnDate: "2024-01-03",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestCreateBooking_AppendsAndLists(t *testing.T) {
	svc := newTestBookingService(0)
	ctx := context.Background()

	confirmation, err := svc.CreateBooking(ctx, "user-1", validCreateRequest())
	require.NoError(t, err)

	// car-2 at 230/day for three nights
	assert.InDelta(t, 690, confirmation.Booking.TotalPrice, 0.001)
	assert.Equal(t, "/dashboard", confirmation.Redirect)
	assert.NotEmpty(t, confirmation.Booking.ID)
	require.NotNil(t, confirmation.Booking.Vehicle)
	assert.Equal(t, "BMW 7 Series", confirmation.Booking.Vehicle.Name)

	// The new booking joins the two seeded ones, newest first
	bookings, err := svc.GetUserBookings(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.Equal(t, confirmation.Booking.ID, bookings[0].ID)
	assert.Equal(t, "booking-1", bookings[1].ID)
	assert.Equal(t, "booking-2", bookings[2].ID)
}

func TestCreateBooking_UnknownVehicle(t *testing.T) {
	svc := newTestBookingService(0)

	req := validCreateRequest()
	req.VehicleID = "car-99"

	_, err := svc.CreateBooking(context.Background(), "user-1", req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateBooking_ValidationRejectsForm(t *testing.T) {
	svc := newTestBookingService(0)

	req := validCreateRequest()
	req.PaymentMethod = "cash"

	_, err := svc.CreateBooking(context.Background(), "user-1", req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestCreateBooking_CancelledDuringConfirmDelay(t *testing.T) {
	svc := newTestBookingService(200)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.CreateBooking(ctx, "user-1", validCreateRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	// Nothing was stored
	bookings, err := svc.GetUserBookings(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestGetUserBookings_SeededHistory(t *testing.T) {
	svc := newTestBookingService(0)

	bookings, err := svc.GetUserBookings(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	assert.Equal(t, "booking-1", bookings[0].ID)
	require.NotNil(t, bookings[0].Vehicle)
	assert.Equal(t, "Mercedes-Benz S-Class", bookings[0].Vehicle.Name)

	// Another user sees nothing
	bookings, err = svc.GetUserBookings(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestGetBookingByID_OwnershipScoped(t *testing.T) {
	svc := newTestBookingService(0)
	ctx := context.Background()

	booking, err := svc.GetBookingByID(ctx, "user-1", "booking-1")
	require.NoError(t, err)
	assert.Equal(t, "car-1", booking.VehicleID)

	// A foreign booking reads as absent
	_, err = svc.GetBookingByID(ctx, "user-2", "booking-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = svc.GetBookingByID(ctx, "user-1", "booking-99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
