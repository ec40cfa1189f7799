package usecase

import (
	"context"

	"salon-booking/internal/data/repository"
	"salon-booking/internal/dto/response"

	"go.uber.org/zap"
)

type FavoriteService interface {
	// Toggle flips the salon in the caller's favorites and reports the new
	// membership.
	Toggle(ctx context.Context, phone, salonID string) (*response.FavoriteToggleResponse, error)
	// List returns the favorited salons in the order they were added,
	// localized like the catalog. Favorites whose salon has left the
	// catalog are skipped.
	List(ctx context.Context, phone string) (*response.FavoritesResponse, error)
}

type favoriteService struct {
	repo   *repository.Repository
	locale LocaleService
	log    *zap.Logger
}

func NewFavoriteService(repo *repository.Repository, locale LocaleService, log *zap.Logger) FavoriteService {
	return &favoriteService{
		repo:   repo,
		locale: locale,
		log:    log,
	}
}

func (s *favoriteService) Toggle(ctx context.Context, phone, salonID string) (*response.FavoriteToggleResponse, error) {
	if s.repo.Salon.FindByID(ctx, salonID) == nil {
		return nil, ErrSalonNotFound
	}

	favorite := s.repo.Favorite.Toggle(ctx, phone, salonID)
	s.log.Info("Favorite toggled",
		zap.String("phone", phone),
		zap.String("salon_id", salonID),
		zap.Bool("favorite", favorite),
	)

	return &response.FavoriteToggleResponse{SalonID: salonID, Favorite: favorite}, nil
}

func (s *favoriteService) List(ctx context.Context, phone string) (*response.FavoritesResponse, error) {
	lang, err := s.repo.Locale.ActiveLanguage(ctx)
	if err != nil {
		return nil, err
	}

	ids := s.repo.Favorite.List(ctx, phone)
	salons := make([]response.SalonResponse, 0, len(ids))
	for _, id := range ids {
		salon := s.repo.Salon.FindByID(ctx, id)
		if salon == nil {
			continue
		}
		name := s.locale.ResolveSalonName(ctx, lang, salon.ID, salon.Name)
		address := s.locale.ResolveSalonAddress(ctx, lang, salon.ID, salon.Address)
		salons = append(salons, response.SalonToResponse(salon, name, address, true))
	}

	return &response.FavoritesResponse{Salons: salons}, nil
}
