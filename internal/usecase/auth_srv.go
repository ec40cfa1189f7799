package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"salon-booking/internal/data/entity"
	"salon-booking/internal/data/repository"
	"salon-booking/internal/dto/request"
	"salon-booking/internal/dto/response"
	"salon-booking/pkg/utils"

	"go.uber.org/zap"
)

// AuthService implements the simulated credential flows. There is no SMS
// gateway: the verification code is fixed by configuration and every
// network-shaped step waits the configured simulated delay.
type AuthService interface {
	SignIn(ctx context.Context, req *request.SignInRequest) (*response.AuthResponse, error)

	SignUpStart(ctx context.Context, req *request.SignUpStartRequest) (*response.OTPSentResponse, error)
	SignUpVerify(ctx context.Context, req *request.SignUpVerifyRequest) (*response.AuthResponse, error)

	ForgotStart(ctx context.Context, req *request.ForgotStartRequest) (*response.OTPSentResponse, error)
	ForgotVerify(ctx context.Context, req *request.ForgotVerifyRequest) (*response.VerifiedResponse, error)
	ForgotReset(ctx context.Context, req *request.ForgotResetRequest) error

	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger

	// one submission per phone at a time; a second tap while the first
	// simulated request is pending is rejected outright
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:     repo,
		config:   config,
		log:      log,
		inFlight: make(map[string]struct{}),
	}
}

func (s *authService) acquire(phone string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[phone]; busy {
		return false
	}
	s.inFlight[phone] = struct{}{}
	return true
}

func (s *authService) release(phone string) {
	s.mu.Lock()
	delete(s.inFlight, phone)
	s.mu.Unlock()
}

func (s *authService) SignIn(ctx context.Context, req *request.SignInRequest) (*response.AuthResponse, error) {
	phone := utils.PhoneDigits(req.Phone)
	if !utils.ValidPhone(phone) {
		return nil, ErrInvalidPhone
	}

	if !s.acquire(phone) {
		return nil, ErrOperationInFlight
	}
	defer s.release(phone)

	if err := utils.SimulateDelay(ctx, s.config.Auth.SimDelay); err != nil {
		return nil, err
	}

	account, err := s.repo.Account.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if account == nil {
		s.log.Warn("Sign-in for unknown phone", zap.String("phone", phone))
		return nil, ErrAccountNotFound
	}

	if !utils.CheckPasswordHash(req.Password, account.Password) {
		s.log.Warn("Sign-in with wrong password", zap.String("phone", phone))
		return nil, ErrInvalidPassword
	}

	profile := &entity.Profile{
		Name:  account.Name,
		Phone: account.Phone,
		Email: account.Email,
	}
	if err := s.repo.Profile.Save(ctx, profile); err != nil {
		return nil, err
	}

	session := s.repo.Session.Create(ctx, phone, s.config.Auth.SessionTTL)
	s.log.Info("Signed in", zap.String("phone", phone))

	resp := response.AuthToResponse(profile, session)
	return &resp, nil
}

func (s *authService) SignUpStart(ctx context.Context, req *request.SignUpStartRequest) (*response.OTPSentResponse, error) {
	phone := utils.PhoneDigits(req.Phone)
	if !utils.ValidPhone(phone) {
		return nil, ErrInvalidPhone
	}

	if !s.acquire(phone) {
		return nil, ErrOperationInFlight
	}
	defer s.release(phone)

	if err := utils.SimulateDelay(ctx, s.config.Auth.SimDelay); err != nil {
		return nil, err
	}

	existing, err := s.repo.Account.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAccountExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	s.repo.Pending.Put(ctx, &entity.PendingVerification{
		Phone:        phone,
		Purpose:      entity.PurposeSignup,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.config.Auth.PendingExpiry),
	})

	s.log.Info("Sign-up code sent", zap.String("phone", phone))
	return &response.OTPSentResponse{Phone: phone, OTP: s.config.Auth.DemoOTP}, nil
}

func (s *authService) SignUpVerify(ctx context.Context, req *request.SignUpVerifyRequest) (*response.AuthResponse, error) {
	phone := utils.PhoneDigits(req.Phone)

	if !s.acquire(phone) {
		return nil, ErrOperationInFlight
	}
	defer s.release(phone)

	if err := utils.SimulateDelay(ctx, s.config.Auth.SimDelay); err != nil {
		return nil, err
	}

	pending := s.repo.Pending.Find(ctx, phone, entity.PurposeSignup)
	if pending == nil || req.OTP != s.config.Auth.DemoOTP {
		s.log.Warn("Sign-up verification rejected", zap.String("phone", phone))
		return nil, ErrOTPMismatch
	}

	account := &entity.Account{
		ID:       utils.GenerateUUIDString(),
		Name:     pending.Name,
		Phone:    phone,
		Password: pending.PasswordHash,
		Email:    pending.Email,
	}
	if err := s.repo.Account.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountExists) {
			return nil, ErrAccountExists
		}
		return nil, err
	}
	s.repo.Pending.Delete(ctx, phone)

	profile := &entity.Profile{
		Name:  account.Name,
		Phone: account.Phone,
		Email: account.Email,
	}
	if err := s.repo.Profile.Save(ctx, profile); err != nil {
		return nil, err
	}

	session := s.repo.Session.Create(ctx, phone, s.config.Auth.SessionTTL)
	s.log.Info("Account registered", zap.String("phone", phone))

	resp := response.AuthToResponse(profile, session)
	return &resp, nil
}

func (s *authService) ForgotStart(ctx context.Context, req *request.ForgotStartRequest) (*response.OTPSentResponse, error) {
	phone := utils.PhoneDigits(req.Phone)
	if !utils.ValidPhone(phone) {
		return nil, ErrInvalidPhone
	}

	if !s.acquire(phone) {
		return nil, ErrOperationInFlight
	}
	defer s.release(phone)

	if err := utils.SimulateDelay(ctx, s.config.Auth.SimDelay); err != nil {
		return nil, err
	}

	// the account must exist before any code goes out
	account, err := s.repo.Account.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	now := time.Now()
	s.repo.Pending.Put(ctx, &entity.PendingVerification{
		Phone:     phone,
		Purpose:   entity.PurposePasswordReset,
		CreatedAt: now,
		ExpiresAt: now.Add(s.config.Auth.PendingExpiry),
	})

	s.log.Info("Reset code sent", zap.String("phone", phone))
	return &response.OTPSentResponse{Phone: phone, OTP: s.config.Auth.DemoOTP}, nil
}

func (s *authService) ForgotVerify(ctx context.Context, req *request.ForgotVerifyRequest) (*response.VerifiedResponse, error) {
	phone := utils.PhoneDigits(req.Phone)

	if !s.acquire(phone) {
		return nil, ErrOperationInFlight
	}
	defer s.release(phone)

	if err := utils.SimulateDelay(ctx, s.config.Auth.SimDelay); err != nil {
		return nil, err
	}

	if req.OTP != s.config.Auth.DemoOTP {
		return nil, ErrOTPMismatch
	}
	if !s.repo.Pending.MarkVerified(ctx, phone, entity.PurposePasswordReset) {
		return nil, ErrOTPMismatch
	}

	return &response.VerifiedResponse{Phone: phone, Verified: true}, nil
}

func (s *authService) ForgotReset(ctx context.Context, req *request.ForgotResetRequest) error {
	phone := utils.PhoneDigits(req.Phone)

	if !s.acquire(phone) {
		return ErrOperationInFlight
	}
	defer s.release(phone)

	if err := utils.SimulateDelay(ctx, s.config.Auth.SimDelay); err != nil {
		return err
	}

	pending := s.repo.Pending.Find(ctx, phone, entity.PurposePasswordReset)
	if pending == nil || !pending.Verified {
		return ErrNotVerified
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return err
	}

	if err := s.repo.Account.UpdatePassword(ctx, phone, hash); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return err
	}
	s.repo.Pending.Delete(ctx, phone)

	s.log.Info("Password reset", zap.String("phone", phone))
	return nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	s.repo.Session.Revoke(ctx, token)
	if err := s.repo.Profile.Clear(ctx); err != nil {
		return err
	}
	s.log.Info("Signed out")
	return nil
}
