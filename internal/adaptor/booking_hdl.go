package adaptor

import (
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Quote handles GET /api/bookings/quote?hotel_id=&room_id=
func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	quote, err := h.service.Quote(r.Context(), query.Get("hotel_id"), query.Get("room_id"))
	if err != nil {
		handleServiceError(h.log, w, err, "quote")
		return
	}

	utils.ResponseSuccess(w, "success", quote)
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created", booking)
}

// ListBookings handles GET /api/bookings
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListBookings(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", response.NewListResponse(bookings))
}

// CurrentBooking handles GET /api/bookings/current
func (h *BookingHandler) CurrentBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.CurrentBooking(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "current booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// GetBooking handles GET /api/bookings/{id}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.GetBooking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ProcessPayment handles POST /api/bookings/{id}/pay
func (h *BookingHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req request.PaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	booking, err := h.service.ProcessPayment(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "process payment")
		return
	}

	utils.ResponseSuccess(w, "Payment successful", booking)
}

// GetConfirmation handles GET /api/bookings/{id}/confirmation
func (h *BookingHandler) GetConfirmation(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.GetConfirmation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get confirmation")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CancelBooking handles PUT /api/bookings/{id}/cancel
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CancelBookingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	booking, err := h.service.CancelBooking(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", booking)
}
