package wire

import (
	"salon-booking/internal/adaptor"
	"salon-booking/internal/data/repository"
	"salon-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProfile(r chi.Router, h *adaptor.ProfileHandler, repo *repository.Repository, log *zap.Logger) {
	auth := middleware.AuthSession(repo.Session, log)

	r.With(auth).Get("/api/profile", h.Get)
	r.With(auth).Put("/api/profile", h.Update)
	r.With(auth).Put("/api/profile/image", h.UpdateImage)

	// the language preference is device-level, not account-level
	r.Get("/api/language", h.Language)
	r.Put("/api/language", h.SetLanguage)
}
