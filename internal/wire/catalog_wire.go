package wire

import (
	"salon-booking/internal/adaptor"
	"salon-booking/internal/data/repository"
	"salon-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(r chi.Router, h *adaptor.CatalogHandler, repo *repository.Repository, log *zap.Logger) {
	// browsing is public; a session only adds favorite flags
	optional := middleware.OptionalAuthSession(repo.Session, log)

	r.Get("/api/locations", h.Locations)
	r.With(optional).Get("/api/salons", h.List)
	r.With(optional).Get("/api/salons/{id}", h.Detail)
}
