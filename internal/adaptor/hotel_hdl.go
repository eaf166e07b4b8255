package adaptor

import (
	"net/http"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HotelHandler struct {
	service usecase.HotelService
	log     *zap.Logger
}

func NewHotelHandler(service usecase.HotelService, log *zap.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		log:     log.With(zap.String("handler", "hotel")),
	}
}

// ListHotels handles GET /api/hotels
func (h *HotelHandler) ListHotels(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	hotelQuery := entity.HotelQuery{
		Location: query.Get("location"),
		FilterSet: entity.FilterSet{
			PriceMin:  utils.ParseFloatPtr(query.Get("price_min")),
			PriceMax:  utils.ParseFloatPtr(query.Get("price_max")),
			MinRating: utils.ParseFloat(query.Get("rating"), 0),
			Amenities: utils.ParseList(query.Get("amenities")),
		},
	}
	sort := entity.SortCriterion(query.Get("sort"))

	hotels, err := h.service.FetchHotels(r.Context(), hotelQuery, sort)
	if err != nil {
		handleServiceError(h.log, w, err, "list hotels")
		return
	}

	utils.ResponseSuccess(w, "success", response.NewListResponse(hotels))
}

// GetHotel handles GET /api/hotels/{id}
func (h *HotelHandler) GetHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.service.GetHotelByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get hotel")
		return
	}

	utils.ResponseSuccess(w, "success", hotel)
}

// ListRooms handles GET /api/hotels/{id}/rooms
func (h *HotelHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.GetHotelRooms(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "list rooms")
		return
	}

	utils.ResponseSuccess(w, "success", response.NewListResponse(rooms))
}

// GetRoom handles GET /api/hotels/{id}/rooms/{roomID}
func (h *HotelHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.service.GetRoom(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "roomID"))
	if err != nil {
		handleServiceError(h.log, w, err, "get room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}
