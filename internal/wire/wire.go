package wire

import (
	"net/http"

	"salon-booking/internal/adaptor"
	"salon-booking/internal/data/repository"
	"salon-booking/internal/usecase"
	"salon-booking/pkg/middleware"
	"salon-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service and handler graph and returns the routed app.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, repo, logger)
	wireCatalog(r, handler.Catalog, repo, logger)
	wireBooking(r, handler.Booking, repo, logger)
	wireProfile(r, handler.Profile, repo, logger)
	wireFavorite(r, handler.Favorite, repo, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
