// Package fixture is the static catalog feed: the full vehicle and category
// collections plus two seed bookings, supplied to the repositories at startup.
// The data is never fetched remotely and never mutated.
package fixture

import (
	"time"

	"car-rental/internal/data/entity"
)

func Categories() []*entity.Category {
	return []*entity.Category{
		{
			ID:          "luxury",
			Name:        "Luxury",
			Icon:        "crown",
			Description: "Premium vehicles with exceptional comfort and style",
		},
		{
			ID:          "sports",
			Name:        "Sports",
			Icon:        "timer",
			Description: "High-performance cars built for speed and handling",
		},
		{
			ID:          "suv",
			Name:        "SUV",
			Icon:        "mountain",
			Description: "Spacious vehicles with off-road capabilities",
		},
		{
			ID:          "electric",
			Name:        "Electric",
			Icon:        "zap",
			Description: "Eco-friendly vehicles with zero emissions",
		},
		{
			ID:          "convertible",
			Name:        "Convertible",
			Icon:        "wind",
			Description: "Open-top vehicles for the ultimate driving experience",
		},
		{
			ID:          "economy",
			Name:        "Economy",
			Icon:        "piggy-bank",
			Description: "Fuel-efficient and budget-friendly options",
		},
	}
}

func Vehicles() []*entity.Vehicle {
	return []*entity.Vehicle{
		{
			ID:         "car-1",
			Name:       "Mercedes-Benz S-Class",
			Brand:      "Mercedes-Benz",
			Model:      "S 580",
			Year:       2023,
			CategoryID: "luxury",
			Price:      250,
			Images: []string{
				"https://images.pexels.com/photos/1009871/pexels-photo-1009871.jpeg",
				"https://images.pexels.com/photos/3778769/pexels-photo-3778769.jpeg",
			},
			Rating:       4.9,
			Seats:        5,
			Transmission: entity.TransmissionAutomatic,
			FuelType:     "Hybrid",
			Features: []string{
				"Heated Seats",
				"Panoramic Sunroof",
				"Premium Sound System",
				"Advanced Driver Assistance",
				"Leather Interior",
			},
			Description: "The Mercedes-Benz S-Class stands as the pinnacle of luxury sedans, offering unparalleled comfort, cutting-edge technology, and exceptional performance.",
			Available:   true,
		},
		{
			ID:         "car-2",
			Name:       "BMW 7 Series",
			Brand:      "BMW",
			Model:      "740i",
			Year:       2023,
			CategoryID: "luxury",
			Price:      230,
			Images: []string{
				"https://images.pexels.com/photos/100656/pexels-photo-100656.jpeg",
				"https://images.pexels.com/photos/244206/pexels-photo-244206.jpeg",
			},
			Rating:       4.8,
			Seats:        5,
			Transmission: entity.TransmissionAutomatic,
			FuelType:     "Gasoline",
			Features: []string{
				"Executive Lounge Seating",
				"Ambient Lighting",
				"Gesture Control",
				"Harman/Kardon Audio",
				"Air Suspension",
			},
			Description: "The BMW 7 Series delivers a perfect blend of luxury and driving dynamics, with innovative technology and a spacious interior.",
			Available:   true,
		},
		{
			ID:         "car-3",
			Name:       "Ferrari 488 GTB",
			Brand:      "Ferrari",
			Model:      "488 GTB",
			Year:       2022,
			CategoryID: "sports",
			Price:      1200,
			Images: []string{
				"https://images.pexels.com/photos/337909/pexels-photo-337909.jpeg",
				"https://images.pexels.com/photos/3972755/pexels-photo-3972755.jpeg",
			},
			Rating:       5.0,
			Seats:        2,
			Transmission: entity.TransmissionAutomatic,
			FuelType:     "Gasoline",
			Features: []string{
				"Twin-Turbocharged V8 Engine",
				"Carbon Fiber Components",
				"Race-Inspired Interior",
				"Adaptive Suspension",
				"Launch Control",
			},
			Description: "Experience the thrill of Italian engineering with the Ferrari 488 GTB. This mid-engine masterpiece delivers breathtaking performance and razor-sharp handling.",
			Available:   true,
		},
		{
			ID:         "car-4",
			Name:       "Porsche 911 Turbo S",
			Brand:      "Porsche",
			Model:      "911 Turbo S",
			Year:       2023,
			CategoryID: "sports",
			Price:      950,
			Images: []string{
				"https://images.pexels.com/photos/3786091/pexels-photo-3786091.jpeg",
				"https://images.pexels.com/photos/1035108/pexels-photo-1035108.jpeg",
			},
			Rating:       4.9,
			Seats:        4,
			Transmission: entity.TransmissionAutomatic,
			FuelType:     "Gasoline",
			Features: []string{
				"Twin-Turbocharged Flat-Six Engine",
				"All-Wheel Drive",
				"Sport Chrono Package",
				"Adaptive Sports Seats",
				"Burmester Audio System",
			},
			Description: "The Porsche 911 Turbo S represents the perfect balance of everyday usability and extreme performance.",
			Available:   false,
		},
		{
			ID:         "car-5",
			Name:       "Range Rover Autobiography",
			Brand:      "Land Rover",
			Model:      "Range Rover Autobiography",
			Year:       2023,
			CategoryID: "suv",
			Price:      320,
			Images: []string{
				"https://images.pexels.com/photos/116675/pexels-photo-116675.jpeg",
				"https://images.pexels.com/photos/13251743/pexels-photo-13251743.jpeg",
			},
			Rating:       4.8,
			Seats:        5,
			Transmission: entity.TransmissionAutomatic,
			FuelType:     "Hybrid",
			Features: []string{
				"Semi-Aniline Leather Seats",
				"Executive Class Comfort",
				"All-Terrain Progress Control",
				"Meridian Signature Sound System",
				"Advanced Air Purification",
			},
			Description: "The Range Rover Autobiography represents the pinnacle of luxury SUVs, combining opulent comfort with genuine off-road capability.",
			Available:   true,
		},
		{
			ID:         "car-6",
			Name:       "Tesla Model S Plaid",
			Brand:      "Tesla",
			Model:      "Model S Plaid",
			Year:       2023,
			CategoryID: "electric",
			Price:      375,
			Images: []string{
				"https://images.pexels.com/photos/12861591/pexels-photo-12861591.jpeg",
				"https://images.pexels.com/photos/11517830/pexels-photo-11517830.jpeg",
			},
			Rating:       4.9,
			Seats:        5,
			Transmission: entity.TransmissionAutomatic,
			FuelType:     "Electric",
			Features: []string{
				"Tri-Motor All-Wheel Drive",
				"Autopilot Capability",
				"Gaming-Level Interior Computing",
				"17\" Touchscreen Display",
				"Glass Roof",
			},
			Description: "The Tesla Model S Plaid is the fastest accelerating production car ever made, combining ludicrous performance with zero emissions.",
			Available:   true,
		},
		{
			ID:         "car-7",
			Name:       "Lamborghini Urus",
			Brand:      "Lamborghini",
			Model:      "Urus",
			Year:       2023,
			CategoryID: "suv",
			Price:      850,
			Images: []string{
				"https://images.pexels.com/photos/3802510/pexels-photo-3802510.jpeg",
				"https://images.pexels.com/photos/10905606/pexels-photo-10905606.jpeg",
			},
			Rating:       4.9,
			Seats:        5,
			Transmission: entity.TransmissionAutomatic,
			FuelType:     "Gasoline",
			Features: []string{
				"Twin-Turbo V8 Engine",
				"Adaptive Air Suspension",
				"Carbon Ceramic Brakes",
				"Alcantara Interior",
				"Multiple Driving Modes",
			},
			Description: "The Lamborghini Urus redefines the SUV segment with its supercar DNA and practical versatility.",
			Available:   true,
		},
		{
			ID:         "car-8",
			Name:       "Bentley Continental GT",
			Brand:      "Bentley",
			Model:      "Continental GT",
			Year:       2023,
			CategoryID: "luxury",
			Price:      620,
			Images: []string{
				"https://images.pexels.com/photos/3972750/pexels-photo-3972750.jpeg",
				"https://images.pexels.com/photos/3972750/pexels-photo-3972750.jpeg",
			},
			Rating:       4.8,
			Seats:        4,
			Transmission: entity.TransmissionAutomatic,
			FuelType:     "Gasoline",
			Features: []string{
				"Handcrafted Interior",
				"Rotating Dashboard Display",
				"Naim Audio System",
				"Active All-Wheel Drive",
				"Dynamic Ride System",
			},
			Description: "The Bentley Continental GT exemplifies grand touring excellence with its perfect blend of performance, luxury, and craftsmanship.",
			Available:   true,
		},
	}
}

func Bookings() []*entity.Booking {
	return []*entity.Booking{
		{
			ID:         "booking-1",
			VehicleID:  "car-1",
			UserID:     "user-1",
			StartDate:  date(2023, 12, 10),
			EndDate:    date(2023, 12, 12),
			Status:     entity.BookingStatusConfirmed,
			TotalPrice: 750,
			CreatedAt:  time.Date(2023, 12, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:         "booking-2",
			VehicleID:  "car-3",
			UserID:     "user-1",
			StartDate:  date(2023, 11, 5),
			EndDate:    date(2023, 11, 6),
			Status:     entity.BookingStatusCompleted,
			TotalPrice: 1200,
			CreatedAt:  time.Date(2023, 10, 25, 14, 15, 0, 0, time.UTC),
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
