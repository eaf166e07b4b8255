package response

import (
	"hotel-booking/internal/data/entity"
)

type HotelResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Address         string   `json:"address"`
	City            string   `json:"city"`
	Price           float64  `json:"price"`
	Discount        float64  `json:"discount"`
	DiscountedPrice int64    `json:"discounted_price"`
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"review_count"`
	Amenities       []string `json:"amenities"`
	Images          []string `json:"images"`
}

type RoomResponse struct {
	ID              string   `json:"id"`
	HotelID         string   `json:"hotel_id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	Discount        float64  `json:"discount"`
	DiscountedPrice int64    `json:"discounted_price"`
	MaxOccupancy    int      `json:"max_occupancy"`
	Size            int      `json:"size"`
	BedType         string   `json:"bed_type"`
	Image           string   `json:"image"`
	Amenities       []string `json:"amenities"`
}

func HotelToResponse(hotel *entity.Hotel, discountedPrice int64) HotelResponse {
	return HotelResponse{
		ID:              hotel.ID,
		Name:            hotel.Name,
		Description:     hotel.Description,
		Address:         hotel.Address,
		City:            hotel.City,
		Price:           hotel.Price,
		Discount:        hotel.Discount,
		DiscountedPrice: discountedPrice,
		Rating:          hotel.Rating,
		ReviewCount:     hotel.ReviewCount,
		Amenities:       hotel.Amenities,
		Images:          hotel.Images,
	}
}

func RoomToResponse(room *entity.Room, discountedPrice int64) RoomResponse {
	return RoomResponse{
		ID:              room.ID,
		HotelID:         room.HotelID,
		Name:            room.Name,
		Description:     room.Description,
		Price:           room.Price,
		Discount:        room.Discount,
		DiscountedPrice: discountedPrice,
		MaxOccupancy:    room.MaxOccupancy,
		Size:            room.Size,
		BedType:         room.BedType,
		Image:           room.Image,
		Amenities:       room.Amenities,
	}
}
