package repository

import (
	"context"
	"fmt"

	"salon-booking/internal/data/entity"
	"salon-booking/pkg/storage"

	"go.uber.org/zap"
)

// profileKey is the persisted key for the singleton profile.
const profileKey = "trimtime_profile"

// ProfileRepository holds the single signed-in profile. Get returns nil
// when no profile was ever saved.
type ProfileRepository interface {
	Get(ctx context.Context) (*entity.Profile, error)
	Save(ctx context.Context, profile *entity.Profile) error
	Clear(ctx context.Context) error
}

type profileRepository struct {
	store storage.Store
	log   *zap.Logger
}

func NewProfileRepository(store storage.Store, log *zap.Logger) ProfileRepository {
	return &profileRepository{
		store: store,
		log:   log.With(zap.String("repository", "profile")),
	}
}

func (r *profileRepository) Get(_ context.Context) (*entity.Profile, error) {
	var profile entity.Profile
	found, err := r.store.Load(profileKey, &profile)
	if err != nil {
		r.log.Error("Failed to load profile", zap.Error(err))
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &profile, nil
}

func (r *profileRepository) Save(_ context.Context, profile *entity.Profile) error {
	if err := r.store.Save(profileKey, profile); err != nil {
		r.log.Error("Failed to save profile", zap.Error(err))
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *profileRepository) Clear(_ context.Context) error {
	if err := r.store.Clear(profileKey); err != nil {
		r.log.Error("Failed to clear profile", zap.Error(err))
		return fmt.Errorf("clear profile: %w", err)
	}
	return nil
}
