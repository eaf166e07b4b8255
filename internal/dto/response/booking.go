package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type GuestDetailsResponse struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// BookingResponse carries the stored booking plus the display-only tax
// figures, which are derived from the total on every render.
type BookingResponse struct {
	ID           string               `json:"id"`
	HotelID      string               `json:"hotel_id"`
	HotelName    string               `json:"hotel_name"`
	RoomID       string               `json:"room_id"`
	RoomName     string               `json:"room_name"`
	CheckIn      string               `json:"check_in"`
	CheckOut     string               `json:"check_out"`
	Guests       int                  `json:"guests"`
	Nights       int                  `json:"nights"`
	Price        float64              `json:"price"`
	Discount     float64              `json:"discount"`
	NightlyPrice int64                `json:"nightly_price"`
	TotalPrice   int64                `json:"total_price"`
	Tax          int64                `json:"tax"`
	GrandTotal   int64                `json:"grand_total"`
	GuestDetails GuestDetailsResponse `json:"guest_details"`
	Status       entity.BookingStatus `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
}

// QuoteResponse previews the price of a room for the current search.
type QuoteResponse struct {
	HotelID      string  `json:"hotel_id"`
	HotelName    string  `json:"hotel_name"`
	RoomID       string  `json:"room_id"`
	RoomName     string  `json:"room_name"`
	CheckIn      string  `json:"check_in"`
	CheckOut     string  `json:"check_out"`
	Guests       int     `json:"guests"`
	Nights       int     `json:"nights"`
	Price        float64 `json:"price"`
	Discount     float64 `json:"discount"`
	NightlyPrice int64   `json:"nightly_price"`
	TotalPrice   int64   `json:"total_price"`
	Tax          int64   `json:"tax"`
	GrandTotal   int64   `json:"grand_total"`
}

func GuestDetailsToResponse(details entity.GuestDetails) GuestDetailsResponse {
	return GuestDetailsResponse{
		FirstName:       details.FirstName,
		LastName:        details.LastName,
		Email:           details.Email,
		Phone:           details.Phone,
		SpecialRequests: details.SpecialRequests,
	}
}
