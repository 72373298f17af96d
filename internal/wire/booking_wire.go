package wire

import (
	"railway-booking/internal/adaptor"
	"railway-booking/internal/data/repository"
	"railway-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Booking requires a logged-in user
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/api/book-ticket", bookingHandler.BookTicket)
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)
	})
}
