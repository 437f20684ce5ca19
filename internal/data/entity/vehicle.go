package entity

type Transmission string

const (
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionManual    Transmission = "Manual"
)

// Vehicle is an immutable fixture record; repositories hand out copies and
// nothing in the write path touches these fields.
type Vehicle struct {
	ID           string
	Name         string
	Brand        string
	Model        string
	Year         int
	CategoryID   string
	Price        float64 // daily rate
	Images       []string
	Rating       float64
	Seats        int
	Transmission Transmission
	FuelType     string
	Features     []string
	Description  string
	Available    bool
}
