package usecase

import (
	"salon-booking/internal/data/repository"
	"salon-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Catalog  CatalogService
	Booking  BookingService
	Profile  ProfileService
	Favorite FavoriteService
	Locale   LocaleService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	locale := NewLocaleService(repo, log)

	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Catalog:  NewCatalogService(repo, locale, config, log),
		Booking:  NewBookingService(repo, config, log),
		Profile:  NewProfileService(repo, log),
		Favorite: NewFavoriteService(repo, locale, log),
		Locale:   locale,
	}
}
