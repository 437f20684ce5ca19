package response

import (
	"car-rental/internal/data/entity"
)

type VehicleResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	Image        string  `json:"image"`
	Rating       float64 `json:"rating"`
	Seats        int     `json:"seats"`
	Transmission string  `json:"transmission"`
	FuelType     string  `json:"fuel_type"`
	Available    bool    `json:"available"`
}

type VehicleDetailResponse struct {
	VehicleResponse
	Images      []string `json:"images"`
	Features    []string `json:"features"`
	Description string   `json:"description"`
}

// VehicleListResponse carries the count so the client can render
// "Showing N vehicles"; zero matches is a valid result, not an error.
type VehicleListResponse struct {
	Data  []VehicleResponse `json:"data"`
	Count int               `json:"count"`
}

// Helper converters
func VehicleToResponse(vehicle *entity.Vehicle) VehicleResponse {
	image := ""
	if len(vehicle.Images) > 0 {
		image = vehicle.Images[0]
	}

	return VehicleResponse{
		ID:           vehicle.ID,
		Name:         vehicle.Name,
		Brand:        vehicle.Brand,
		Model:        vehicle.Model,
		Year:         vehicle.Year,
		Category:     vehicle.CategoryID,
		Price:        vehicle.Price,
		Image:        image,
		Rating:       vehicle.Rating,
		Seats:        vehicle.Seats,
		Transmission: string(vehicle.Transmission),
		FuelType:     vehicle.FuelType,
		Available:    vehicle.Available,
	}
}

func VehicleToDetailResponse(vehicle *entity.Vehicle) VehicleDetailResponse {
	return VehicleDetailResponse{
		VehicleResponse: VehicleToResponse(vehicle),
		Images:          vehicle.Images,
		Features:        vehicle.Features,
		Description:     vehicle.Description,
	}
}

func NewVehicleListResponse(vehicles []*entity.Vehicle) *VehicleListResponse {
	data := make([]VehicleResponse, len(vehicles))
	for i, vehicle := range vehicles {
		data[i] = VehicleToResponse(vehicle)
	}

	return &VehicleListResponse{
		Data:  data,
		Count: len(data),
	}
}
