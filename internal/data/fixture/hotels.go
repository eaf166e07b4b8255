package fixture

import "hotel-booking/internal/data/entity"

// Hotels is the static hotel catalog in recommended order.
func Hotels() []entity.Hotel {
	return []entity.Hotel{
		{
			ID:          "h1",
			Name:        "Grand Luxury Resort & Spa",
			Description: "Beachfront resort with a full-service spa, three pools and oceanfront dining.",
			Address:     "1200 Ocean Drive",
			City:        "Miami Beach",
			Price:       299,
			Discount:    10,
			Rating:      4.8,
			ReviewCount: 1248,
			Amenities: []string{
				entity.AmenityWifi, entity.AmenityBreakfast, entity.AmenityParking, entity.AmenityPool,
				entity.AmenityGym, entity.AmenityRestaurant, entity.AmenityAC,
			},
			Images: []string{
				"https://images.pexels.com/photos/258154/pexels-photo-258154.jpeg",
				"https://images.pexels.com/photos/271624/pexels-photo-271624.jpeg",
			},
		},
		{
			ID:          "h2",
			Name:        "Riverside Boutique Hotel",
			Description: "Intimate boutique hotel on the river with locally designed rooms.",
			Address:     "45 Hudson Street",
			City:        "New York",
			Price:       189,
			Rating:      4.7,
			ReviewCount: 856,
			Amenities: []string{
				entity.AmenityWifi, entity.AmenityRestaurant, entity.AmenityAC, entity.AmenityPetFriendly,
			},
			Images: []string{
				"https://images.pexels.com/photos/1134176/pexels-photo-1134176.jpeg",
			},
		},
		{
			ID:          "h3",
			Name:        "Oceanview Paradise Resort",
			Description: "Cliffside resort with private beach access and bungalows over the sand.",
			Address:     "22000 Pacific Coast Highway",
			City:        "Malibu",
			Price:       349,
			Discount:    5,
			Rating:      4.9,
			ReviewCount: 2103,
			Amenities: []string{
				entity.AmenityWifi, entity.AmenityBreakfast, entity.AmenityParking, entity.AmenityPool,
				entity.AmenityRestaurant, entity.AmenityAC,
			},
			Images: []string{
				"https://images.pexels.com/photos/2034335/pexels-photo-2034335.jpeg",
			},
		},
		{
			ID:          "h4",
			Name:        "Downtown Urban Suites",
			Description: "Apartment style suites with kitchens in the heart of the business district.",
			Address:     "300 Wacker Drive",
			City:        "Chicago",
			Price:       159,
			Discount:    10,
			Rating:      4.3,
			ReviewCount: 412,
			Amenities: []string{
				entity.AmenityWifi, entity.AmenityBreakfast, entity.AmenityGym, entity.AmenityAC,
			},
			Images: []string{
				"https://images.pexels.com/photos/1838554/pexels-photo-1838554.jpeg",
			},
		},
		{
			ID:          "h5",
			Name:        "Alpine Mountain Lodge",
			Description: "Timber lodge at the foot of the slopes with fireplaces in every room.",
			Address:     "77 Summit Road",
			City:        "Aspen",
			Price:       229,
			Rating:      4.6,
			ReviewCount: 634,
			Amenities: []string{
				entity.AmenityWifi, entity.AmenityParking, entity.AmenityRestaurant, entity.AmenityPetFriendly,
			},
			Images: []string{
				"https://images.pexels.com/photos/754268/pexels-photo-754268.jpeg",
			},
		},
		{
			ID:          "h6",
			Name:        "The Historic Grand Hotel",
			Description: "Restored 1920s landmark with classic rooms and a rooftop bar.",
			Address:     "10 Beacon Street",
			City:        "Boston",
			Price:       279,
			Discount:    12,
			Rating:      4.5,
			ReviewCount: 978,
			Amenities: []string{
				entity.AmenityWifi, entity.AmenityGym, entity.AmenityRestaurant, entity.AmenityAC,
			},
			Images: []string{
				"https://images.pexels.com/photos/261102/pexels-photo-261102.jpeg",
			},
		},
	}
}
