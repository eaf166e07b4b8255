package entity

// Amenity tags used by the listing filters.
const (
	AmenityWifi        = "wifi"
	AmenityBreakfast   = "breakfast"
	AmenityParking     = "parking"
	AmenityPool        = "pool"
	AmenityGym         = "gym"
	AmenityRestaurant  = "restaurant"
	AmenityAC          = "ac"
	AmenityPetFriendly = "petfriendly"
)

type Hotel struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Price       float64  `json:"price"`
	Discount    float64  `json:"discount"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
}

// HasAmenities reports whether every required tag is offered.
func (h Hotel) HasAmenities(required []string) bool {
	for _, want := range required {
		found := false
		for _, have := range h.Amenities {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

type Room struct {
	ID           string   `json:"id"`
	HotelID      string   `json:"hotel_id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Discount     float64  `json:"discount"`
	MaxOccupancy int      `json:"max_occupancy"`
	Size         int      `json:"size"`
	BedType      string   `json:"bed_type"`
	Image        string   `json:"image"`
	Amenities    []string `json:"amenities"`
}
