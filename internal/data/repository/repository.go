package repository

import (
	"salon-booking/pkg/storage"
	"salon-booking/pkg/utils"

	"go.uber.org/zap"
)

type Repository struct {
	Account  AccountRepository
	Profile  ProfileRepository
	Session  SessionRepository
	Pending  PendingRepository
	Salon    SalonRepository
	Booking  BookingRepository
	Favorite FavoriteRepository
	Locale   LocaleRepository
}

// NewRepository wires every repository: the catalog and locales are loaded
// from disk up front, the profile/account/language repos share the injected
// key/value store, and the rest live in memory.
func NewRepository(store storage.Store, config *utils.Config, log *zap.Logger) (*Repository, error) {
	salon, err := NewSalonRepository(config.Data.CatalogPath, log)
	if err != nil {
		return nil, err
	}

	locale, err := NewLocaleRepository(config.Data.LocalesDir, config.Data.DefaultLanguage, store, log)
	if err != nil {
		return nil, err
	}

	return &Repository{
		Account:  NewAccountRepository(store, log),
		Profile:  NewProfileRepository(store, log),
		Session:  NewSessionRepository(log),
		Pending:  NewPendingRepository(log),
		Salon:    salon,
		Booking:  NewBookingRepository(log),
		Favorite: NewFavoriteRepository(log),
		Locale:   locale,
	}, nil
}
