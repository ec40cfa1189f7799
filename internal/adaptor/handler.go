package adaptor

import (
	"salon-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Catalog  *CatalogHandler
	Booking  *BookingHandler
	Profile  *ProfileHandler
	Favorite *FavoriteHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Catalog:  NewCatalogHandler(service.Catalog, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Profile:  NewProfileHandler(service.Profile, service.Locale, log),
		Favorite: NewFavoriteHandler(service.Favorite, log),
	}
}
