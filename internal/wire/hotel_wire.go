package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireHotel(r chi.Router, hotelHandler *adaptor.HotelHandler) {
	r.Route("/api/hotels", func(r chi.Router) {
		r.Get("/", hotelHandler.ListHotels)
		r.Get("/{id}", hotelHandler.GetHotel)
		r.Get("/{id}/rooms", hotelHandler.ListRooms)
		r.Get("/{id}/rooms/{roomID}", hotelHandler.GetRoom)
	})
}
