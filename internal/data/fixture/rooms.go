package fixture

import (
	"fmt"

	"hotel-booking/internal/data/entity"
)

// Rooms is the static room catalog.
func Rooms() []entity.Room {
	return []entity.Room{
		{
			ID:           "r1",
			HotelID:      "h1",
			Name:         "Deluxe Ocean View Room",
			Description:  "Spacious room with ocean views, a king-size bed and a private balcony.",
			Price:        299,
			Discount:     10,
			MaxOccupancy: 2,
			Size:         38,
			BedType:      "King",
			Image:        "https://images.pexels.com/photos/271624/pexels-photo-271624.jpeg",
			Amenities:    []string{"wifi", "tv", "ac", "minibar", "safe", "bathtub"},
		},
		{
			ID:           "r2",
			HotelID:      "h1",
			Name:         "Premium Suite",
			Description:  "Suite with separate living area, two bathrooms and a wrap-around balcony.",
			Price:        459,
			Discount:     0,
			MaxOccupancy: 4,
			Size:         68,
			BedType:      "King + Sofa Bed",
			Image:        "https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg",
			Amenities:    []string{"wifi", "tv", "ac", "minibar", "safe", "bathtub", "kitchenette", "balcony"},
		},
		{
			ID:           "r3",
			HotelID:      "h1",
			Name:         "Garden View Double Room",
			Description:  "Room overlooking the gardens with two queen beds.",
			Price:        259,
			Discount:     15,
			MaxOccupancy: 4,
			Size:         42,
			BedType:      "Two Queens",
			Image:        "https://images.pexels.com/photos/279746/pexels-photo-279746.jpeg",
			Amenities:    []string{"wifi", "tv", "ac", "minibar", "safe"},
		},
		{
			ID:           "r4",
			HotelID:      "h2",
			Name:         "Classic Queen Room",
			Description:  "Queen room with custom furnishings and local artwork.",
			Price:        189,
			Discount:     0,
			MaxOccupancy: 2,
			Size:         25,
			BedType:      "Queen",
			Image:        "https://images.pexels.com/photos/271619/pexels-photo-271619.jpeg",
			Amenities:    []string{"wifi", "tv", "ac", "coffee_maker", "safe"},
		},
		{
			ID:           "r5",
			HotelID:      "h2",
			Name:         "Deluxe King Room",
			Description:  "King room with sitting area and city views.",
			Price:        229,
			Discount:     0,
			MaxOccupancy: 2,
			Size:         32,
			BedType:      "King",
			Image:        "https://images.pexels.com/photos/271624/pexels-photo-271624.jpeg",
			Amenities:    []string{"wifi", "tv", "ac", "coffee_maker", "safe", "desk"},
		},
		{
			ID:           "r6",
			HotelID:      "h2",
			Name:         "River View Suite",
			Description:  "Suite with separate bedroom and panoramic river views.",
			Price:        329,
			Discount:     10,
			MaxOccupancy: 3,
			Size:         48,
			BedType:      "King + Sofa Bed",
			Image:        "https://images.pexels.com/photos/1743229/pexels-photo-1743229.jpeg",
			Amenities:    []string{"wifi", "tv", "ac", "coffee_maker", "safe", "desk", "bathtub", "minibar"},
		},
		{
			ID:           "r7",
			HotelID:      "h3",
			Name:         "Beachfront Bungalow",
			Description:  "Private bungalow steps from the sand with an outdoor shower.",
			Price:        429,
			Discount:     0,
			MaxOccupancy: 2,
			Size:         45,
			BedType:      "King",
			Image:        "https://images.pexels.com/photos/1268871/pexels-photo-1268871.jpeg",
			Amenities:    []string{"wifi", "tv", "ac", "minibar", "safe", "outdoor_shower", "breakfast"},
		},
		{
			ID:           "r8",
			HotelID:      "h3",
			Name:         "Ocean View Room",
			Description:  "King room with a balcony facing the Pacific.",
			Price:        349,
			Discount:     5,
			MaxOccupancy: 2,
			Size:         36,
			BedType:      "King",
			Image:        "https://images.pexels.com/photos/237371/pexels-photo-237371.jpeg",
			Amenities:    []string{"wifi", "tv", "ac", "minibar", "safe", "balcony"},
		},
		{
			ID:           "r9",
			HotelID:      "h3",
			Name:         "Family Suite",
			Description:  "Two bedroom suite with full kitchen and laundry.",
			Price:        559,
			Discount:     10,
			MaxOccupancy: 6,
			Size:         76,
			BedType:      "King + Two Queens",
			Image:        "https://images.pexels.com/photos/1457842/pexels-photo-1457842.jpeg",
			Amenities:    []string{"wifi", "tv", "ac", "kitchen", "safe", "balcony", "washer_dryer"},
		},
		{
			ID:           "r10",
			HotelID:      "h4",
			Name:         "Standard Suite",
			Description:  "Suite with kitchen and breakfast included.",
			Price:        159,
			Discount:     10,
			MaxOccupancy: 2,
			Size:         42,
			BedType:      "Queen",
			Image:        "https://images.pexels.com/photos/1838554/pexels-photo-1838554.jpeg",
			Amenities:    []string{"wifi", "tv", "ac", "kitchen", "breakfast"},
		},
		{
			ID:           "r11",
			HotelID:      "h5",
			Name:         "Mountain View Room",
			Description:  "King room with fireplace and mountain-facing balcony.",
			Price:        229,
			Discount:     0,
			MaxOccupancy: 2,
			Size:         30,
			BedType:      "King",
			Image:        "https://images.pexels.com/photos/754268/pexels-photo-754268.jpeg",
			Amenities:    []string{"wifi", "tv", "ac", "fireplace", "balcony"},
		},
		{
			ID:           "r12",
			HotelID:      "h6",
			Name:         "Historic King Room",
			Description:  "Classic king room with original moldings and a soaking tub.",
			Price:        279,
			Discount:     12,
			MaxOccupancy: 2,
			Size:         35,
			BedType:      "King",
			Image:        "https://images.pexels.com/photos/261102/pexels-photo-261102.jpeg",
			Amenities:    []string{"wifi", "tv", "ac", "minibar", "bathtub"},
		},
	}
}

// Validate checks that every room points at a hotel in the catalog.
func Validate(hotels []entity.Hotel, rooms []entity.Room) error {
	ids := make(map[string]struct{}, len(hotels))
	for _, h := range hotels {
		if _, dup := ids[h.ID]; dup {
			return fmt.Errorf("duplicate hotel id %s", h.ID)
		}
		ids[h.ID] = struct{}{}
	}

	seen := make(map[string]struct{}, len(rooms))
	for _, r := range rooms {
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("duplicate room id %s", r.ID)
		}
		seen[r.ID] = struct{}{}

		if _, ok := ids[r.HotelID]; !ok {
			return fmt.Errorf("room %s references unknown hotel %s", r.ID, r.HotelID)
		}
	}

	return nil
}
