package request

// QuoteRequest prices a booking window without creating anything. Edited
// names the date field the user just changed so a reversed pair can be
// repaired in that field's favor; it defaults to pickup.
type QuoteRequest struct {
	VehicleID  string `json:"vehicle_id" validate:"required"`
	PickupDate string `json:"pickup_date" validate:"required,datetime=2006-01-02"`
	ReturnDate string `json:"return_date" validate:"required,datetime=2006-01-02"`
	Edited     string `json:"edited" validate:"omitempty,oneof=pickup return"`
}

// CreateBookingRequest carries the full booking form. The contact and payment
// fields are display-only: no charge is made and nothing is verified beyond
// presence.
type CreateBookingRequest struct {
	VehicleID     string `json:"vehicle_id" validate:"required"`
	PickupDate    string `json:"pickup_date" validate:"required,datetime=2006-01-02"`
	ReturnDate    string `json:"return_date" validate:"required,datetime=2006-01-02"`
	FullName      string `json:"full_name" validate:"required,min=2,max=100"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,min=7,max=20"`
	Address       string `json:"address" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=credit paypal"`
}
