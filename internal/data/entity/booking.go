package entity

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking references its vehicle by identifier only; the vehicle may have
// disappeared from the catalog and the booking still stands.
type Booking struct {
	ID         string
	VehicleID  string
	UserID     string
	StartDate  time.Time
	EndDate    time.Time
	Status     BookingStatus
	TotalPrice float64
	CreatedAt  time.Time
}
