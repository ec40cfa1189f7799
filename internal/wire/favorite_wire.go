package wire

import (
	"salon-booking/internal/adaptor"
	"salon-booking/internal/data/repository"
	"salon-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFavorite(r chi.Router, h *adaptor.FavoriteHandler, repo *repository.Repository, log *zap.Logger) {
	auth := middleware.AuthSession(repo.Session, log)

	r.With(auth).Get("/api/favorites", h.List)
	r.With(auth).Post("/api/favorites", h.Toggle)
}
