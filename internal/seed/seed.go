// Package seed holds the initial catalog loaded into the stores at startup.
// IDs are fixed so clients and tests can reference them.
package seed

import (
	amenityModel "stay/internal/domains/amenity/model"
	roomModel "stay/internal/domains/room/model"
	userModel "stay/internal/domains/user/model"
	gModel "stay/shared/model"
	"stay/shared/timezone"
)

const (
	RoomStandardSingle    = "8c7f1d2e-5b7a-4f3c-9e1d-2a6b8c4f0d11"
	RoomDeluxeDouble      = "3e9a6b1c-7d2f-4a8e-b5c3-1f0d9e7a2b22"
	RoomExecutiveSuite    = "5b2c8e4f-1a9d-4c7b-8f6e-3d1a5c9b7e33"
	RoomFamily            = "9d4e7a2b-6c1f-4e8a-a3b5-7f2c0d8e1a44"
	RoomPresidentialSuite = "1f6b3d8c-9e5a-4b2f-bc7d-5a3e1f9c6b55"

	UserJohnDoe   = "7a1e4c9b-2d6f-4a3e-9b8c-4f7d2e0a5c66"
	UserJaneSmith = "2c8f5a3d-7b1e-4d9c-8a6f-0e3b7d1c4f77"
	UserAdmin     = "6e3b9d1f-4a7c-4e5b-ba2d-8c1f6a4e9d88"
)

func Rooms() []roomModel.Room {
	return []roomModel.Room{
		{
			ID:          RoomStandardSingle,
			Name:        "Standard Single",
			Category:    roomModel.CategoryStandard,
			Description: "A cozy single room, perfect for solo travelers.",
			Price:       99.99,
			Capacity:    1,
			Amenities:   []string{"wifi", "tv", "air-conditioning"},
			Available:   true,
			Metadata:    seedMetadata(),
		},
		{
			ID:          RoomDeluxeDouble,
			Name:        "Deluxe Double",
			Category:    roomModel.CategoryDeluxe,
			Description: "Spacious double room with a city view.",
			Price:       149.99,
			Capacity:    2,
			Amenities:   []string{"wifi", "tv", "air-conditioning", "minibar"},
			Available:   true,
			Metadata:    seedMetadata(),
		},
		{
			ID:          RoomExecutiveSuite,
			Name:        "Executive Suite",
			Category:    roomModel.CategorySuite,
			Description: "Luxurious suite with a separate living area and workspace.",
			Price:       249.99,
			Capacity:    2,
			Amenities:   []string{"wifi", "tv", "air-conditioning", "minibar", "workspace", "bathtub"},
			Available:   true,
			Metadata:    seedMetadata(),
		},
		{
			ID:          RoomFamily,
			Name:        "Family Room",
			Category:    roomModel.CategoryFamily,
			Description: "Comfortable room with two double beds for the whole family.",
			Price:       199.99,
			Capacity:    4,
			Amenities:   []string{"wifi", "tv", "air-conditioning", "minibar"},
			Available:   true,
			Metadata:    seedMetadata(),
		},
		{
			ID:          RoomPresidentialSuite,
			Name:        "Presidential Suite",
			Category:    roomModel.CategoryPresidential,
			Description: "The finest suite in the hotel, with panoramic views and butler service.",
			Price:       499.99,
			Capacity:    2,
			Amenities:   []string{"wifi", "tv", "air-conditioning", "minibar", "workspace", "bathtub", "balcony", "butler-service"},
			Available:   true,
			Metadata:    seedMetadata(),
		},
	}
}

func Users() []userModel.User {
	return []userModel.User{
		{
			ID:       UserJohnDoe,
			Name:     "John Doe",
			Email:    "john.doe@example.com",
			Phone:    "+1-555-0101",
			Metadata: seedMetadata(),
		},
		{
			ID:       UserJaneSmith,
			Name:     "Jane Smith",
			Email:    "jane.smith@example.com",
			Phone:    "+1-555-0102",
			Metadata: seedMetadata(),
		},
		{
			ID:       UserAdmin,
			Name:     "Admin User",
			Email:    "admin@example.com",
			Phone:    "+1-555-0100",
			Metadata: seedMetadata(),
		},
	}
}

func Amenities() []amenityModel.Amenity {
	return []amenityModel.Amenity{
		{ID: "wifi", Name: "Wi-Fi", Description: "High-speed wireless internet"},
		{ID: "tv", Name: "Television", Description: "Flat-screen TV with streaming"},
		{ID: "air-conditioning", Name: "Air Conditioning", Description: "Individually controlled climate"},
		{ID: "minibar", Name: "Minibar", Description: "Stocked in-room minibar"},
		{ID: "workspace", Name: "Workspace", Description: "Desk with ergonomic chair"},
		{ID: "bathtub", Name: "Bathtub", Description: "Full-size soaking bathtub"},
		{ID: "balcony", Name: "Balcony", Description: "Private balcony"},
		{ID: "butler-service", Name: "Butler Service", Description: "Dedicated butler on call"},
	}
}

func seedMetadata() gModel.Metadata {
	now := timezone.Now()

	return gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  "seed",
		ModifiedBy: "seed",
	}
}
