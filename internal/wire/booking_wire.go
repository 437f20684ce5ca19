package wire

import (
	"car-rental/internal/adaptor"
	"car-rental/internal/data/repository"
	"car-rental/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/bookings", func(r chi.Router) {
		// Quote is public: the booking form prices the window before login
		r.Post("/quote", bookingHandler.Quote)

		// Submission and history require a session
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthSession(repo.Session, log))

			r.Post("/", bookingHandler.CreateBooking)
			r.Get("/", bookingHandler.GetUserBookings)
			r.Get("/{id}", bookingHandler.GetBookingByID)
		})
	})
}
