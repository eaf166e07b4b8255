package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	// Checkout, payment and the profile's booking history need a signed-in user
	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(middleware.RequireSession(repo.Session, log))

		r.Get("/quote", bookingHandler.Quote)
		r.Get("/current", bookingHandler.CurrentBooking)
		r.Post("/", bookingHandler.CreateBooking)
		r.Get("/", bookingHandler.ListBookings)
		r.Get("/{id}", bookingHandler.GetBooking)
		r.Post("/{id}/pay", bookingHandler.ProcessPayment)
		r.Get("/{id}/confirmation", bookingHandler.GetConfirmation)
		r.Put("/{id}/cancel", bookingHandler.CancelBooking)
	})
}
