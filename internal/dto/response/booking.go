package response

import (
	"time"

	"car-rental/internal/data/entity"
)

// QuoteResponse is the booking window: repaired dates, whole-day duration and
// total price.
type QuoteResponse struct {
	VehicleID  string  `json:"vehicle_id"`
	PickupDate string  `json:"pickup_date"`
	ReturnDate string  `json:"return_date"`
	Days       int     `json:"days"`
	DailyRate  float64 `json:"daily_rate"`
	TotalPrice float64 `json:"total_price"`
}

type BookingResponse struct {
	ID         string               `json:"id"`
	VehicleID  string               `json:"vehicle_id"`
	UserID     string               `json:"user_id"`
	StartDate  string               `json:"start_date"`
	EndDate    string               `json:"end_date"`
	Status     entity.BookingStatus `json:"status"`
	TotalPrice float64              `json:"total_price"`
	CreatedAt  time.Time            `json:"created_at"`

	// Vehicle is filled when the weak reference still resolves in the catalog.
	Vehicle *VehicleResponse `json:"vehicle,omitempty"`
}

// BookingConfirmation wraps the created booking with the navigation signal.
type BookingConfirmation struct {
	Booking  BookingResponse `json:"booking"`
	Redirect string          `json:"redirect"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking, vehicle *entity.Vehicle) BookingResponse {
	resp := BookingResponse{
		ID:         booking.ID,
		VehicleID:  booking.VehicleID,
		UserID:     booking.UserID,
		StartDate:  booking.StartDate.Format("2006-01-02"),
		EndDate:    booking.EndDate.Format("2006-01-02"),
		Status:     booking.Status,
		TotalPrice: booking.TotalPrice,
		CreatedAt:  booking.CreatedAt,
	}

	if vehicle != nil {
		vehicleResp := VehicleToResponse(vehicle)
		resp.Vehicle = &vehicleResp
	}

	return resp
}
