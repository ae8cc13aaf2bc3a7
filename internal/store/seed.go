// internal/store/seed.go
package store

import (
	"fmt"

	"github.com/kserge2001/AfricanEstates/internal/models"
)

func intPtr(v int) *int          { return &v }
func floatPtr(v float64) *float64 { return &v }

// Seed loads the demo agent and the six demo listings. Featured status is set
// on the record at creation time.
func Seed(s Store) error {
	agent := models.User{
		Username: "demo_agent",
		Email:    "agent@afrihome.com",
		FullName: "Demo Agent",
		Phone:    "+234 123 4567 890",
		IsAgent:  true,
	}
	if err := agent.SetPassword("Demo_Agent1!"); err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	agent, err := s.CreateUser(agent)
	if err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}

	listings := []models.Property{
		{
			Title:        "Luxury Villa in Lagos",
			Description:  "Beautiful luxury villa with modern amenities in the heart of Lagos.",
			Price:        450000,
			Bedrooms:     intPtr(4),
			Bathrooms:    intPtr(3),
			Area:         floatPtr(350),
			Country:      "Nigeria",
			City:         "Lagos",
			Neighborhood: "Lekki",
			Address:      "123 Lekki Road, Lagos",
			PropertyType: models.PropertyTypeVilla,
			ListingType:  models.ListingTypeSale,
			YearBuilt:    intPtr(2020),
			Features:     models.EncodeStringArray([]string{"Pool", "Garden", "Security", "Garage"}),
			MainImage:    "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Images: models.EncodeStringArray([]string{
				"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			}),
			Featured: true,
		},
		{
			Title:        "Modern Apartment in Nairobi",
			Description:  "Stylish modern apartment in the upscale Westlands area.",
			Price:        220000,
			Bedrooms:     intPtr(2),
			Bathrooms:    intPtr(2),
			Area:         floatPtr(120),
			Country:      "Kenya",
			City:         "Nairobi",
			Neighborhood: "Westlands",
			Address:      "45 Westlands Avenue, Nairobi",
			PropertyType: models.PropertyTypeApartment,
			ListingType:  models.ListingTypeSale,
			YearBuilt:    intPtr(2018),
			Features:     models.EncodeStringArray([]string{"Security", "Parking", "Gym", "Furnished"}),
			MainImage:    "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Images: models.EncodeStringArray([]string{
				"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1567767292278-a4f21aa2d36e?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			}),
		},
		{
			Title:        "Family Home in Cape Town",
			Description:  "Spacious family home with garden and swimming pool in Constantia.",
			Price:        380000,
			Bedrooms:     intPtr(5),
			Bathrooms:    intPtr(3),
			Area:         floatPtr(420),
			Country:      "South Africa",
			City:         "Cape Town",
			Neighborhood: "Constantia",
			Address:      "78 Constantia Road, Cape Town",
			PropertyType: models.PropertyTypeHouse,
			ListingType:  models.ListingTypeSale,
			YearBuilt:    intPtr(2010),
			Features:     models.EncodeStringArray([]string{"Pool", "Garden", "Garage", "Security"}),
			MainImage:    "https://images.unsplash.com/photo-1564013799919-ab600027ffc6?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Images: models.EncodeStringArray([]string{
				"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1576941089067-2de3c901e126?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			}),
			Featured: true,
		},
		{
			Title:        "Beachfront Property in Accra",
			Description:  "Stunning beachfront property with amazing sea views in Labadi.",
			Price:        530000,
			Bedrooms:     intPtr(4),
			Bathrooms:    intPtr(4),
			Area:         floatPtr(380),
			Country:      "Ghana",
			City:         "Accra",
			Neighborhood: "Labadi",
			Address:      "12 Labadi Beach Road, Accra",
			PropertyType: models.PropertyTypeVilla,
			ListingType:  models.ListingTypeSale,
			YearBuilt:    intPtr(2015),
			Features:     models.EncodeStringArray([]string{"Beach Access", "Pool", "Security", "Furnished"}),
			MainImage:    "https://images.unsplash.com/photo-1448630360428-65456885c650?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Images: models.EncodeStringArray([]string{
				"https://images.unsplash.com/photo-1448630360428-65456885c650?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1505081598304-3bee85f930d4?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			}),
		},
		{
			Title:        "Luxury Apartment in Cairo",
			Description:  "Elegant luxury apartment in the prestigious Zamalek district.",
			Price:        280000,
			Bedrooms:     intPtr(3),
			Bathrooms:    intPtr(2),
			Area:         floatPtr(180),
			Country:      "Egypt",
			City:         "Cairo",
			Neighborhood: "Zamalek",
			Address:      "35 Zamalek Street, Cairo",
			PropertyType: models.PropertyTypeApartment,
			ListingType:  models.ListingTypeSale,
			YearBuilt:    intPtr(2017),
			Features:     models.EncodeStringArray([]string{"Security", "Gym", "Parking", "River View"}),
			MainImage:    "https://images.unsplash.com/photo-1605276374104-dee2a0ed3cd6?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Images: models.EncodeStringArray([]string{
				"https://images.unsplash.com/photo-1605276374104-dee2a0ed3cd6?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			}),
		},
		{
			Title:        "Modern House in Dar es Salaam",
			Description:  "Contemporary house with panoramic views in the Masaki area.",
			Price:        320000,
			Bedrooms:     intPtr(4),
			Bathrooms:    intPtr(3),
			Area:         floatPtr(310),
			Country:      "Tanzania",
			City:         "Dar es Salaam",
			Neighborhood: "Masaki",
			Address:      "56 Masaki Road, Dar es Salaam",
			PropertyType: models.PropertyTypeHouse,
			ListingType:  models.ListingTypeSale,
			YearBuilt:    intPtr(2019),
			Features:     models.EncodeStringArray([]string{"Ocean View", "Garden", "Security", "Garage"}),
			MainImage:    "https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Images: models.EncodeStringArray([]string{
				"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1574739782594-db4ead022697?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			}),
			Featured: true,
		},
	}

	for _, listing := range listings {
		if _, err := s.CreateProperty(listing, agent.ID); err != nil {
			return fmt.Errorf("failed to seed property %q: %w", listing.Title, err)
		}
	}

	return nil
}
