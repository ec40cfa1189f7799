package wire

import (
	"salon-booking/internal/adaptor"
	"salon-booking/internal/data/repository"
	"salon-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(r chi.Router, h *adaptor.BookingHandler, repo *repository.Repository, log *zap.Logger) {
	auth := middleware.AuthSession(repo.Session, log)

	r.With(auth).Post("/api/bookings", h.Create)
	r.With(auth).Get("/api/bookings", h.List)
	r.With(auth).Get("/api/bookings/{id}", h.Detail)
	r.With(auth).Post("/api/bookings/{id}/cancel", h.Cancel)
	r.With(auth).Post("/api/bookings/{id}/feedback", h.Feedback)
	r.With(auth).Post("/api/bookings/{id}/rate", h.Rate)

	// back-office hook for moving appointments past their date
	r.With(auth).Post("/api/admin/bookings/{id}/complete", h.Complete)
}
