package usecase

import (
	"context"

	"salon-booking/internal/data/entity"
	"salon-booking/internal/data/repository"
	"salon-booking/internal/dto/request"
	"salon-booking/internal/dto/response"

	"go.uber.org/zap"
)

type ProfileService interface {
	Get(ctx context.Context) (*response.ProfileResponse, error)
	Update(ctx context.Context, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)
	// UpdateImage replaces the avatar with an already-encoded data URL.
	UpdateImage(ctx context.Context, dataURL string) (*response.ProfileResponse, error)
}

type profileService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProfileService(repo *repository.Repository, log *zap.Logger) ProfileService {
	return &profileService{
		repo: repo,
		log:  log,
	}
}

func (s *profileService) Get(ctx context.Context) (*response.ProfileResponse, error) {
	profile, err := s.repo.Profile.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileMissing
	}

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

func (s *profileService) save(ctx context.Context, profile *entity.Profile) (*response.ProfileResponse, error) {
	if err := s.repo.Profile.Save(ctx, profile); err != nil {
		return nil, err
	}
	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

func (s *profileService) Update(ctx context.Context, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	profile, err := s.repo.Profile.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileMissing
	}

	// phone is the account key and never changes here
	profile.Name = req.Name
	profile.Email = req.Email
	if req.Image != "" {
		profile.Image = req.Image
	}

	s.log.Info("Profile updated", zap.String("phone", profile.Phone))
	return s.save(ctx, profile)
}

func (s *profileService) UpdateImage(ctx context.Context, dataURL string) (*response.ProfileResponse, error) {
	profile, err := s.repo.Profile.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileMissing
	}

	profile.Image = dataURL
	return s.save(ctx, profile)
}
