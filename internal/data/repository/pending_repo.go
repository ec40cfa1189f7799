package repository

import (
	"context"
	"sync"
	"time"

	"salon-booking/internal/data/entity"

	"go.uber.org/zap"
)

// PendingRepository tracks in-flight sign-up and password-reset
// verifications between the OTP send and the final step. One pending entry
// per phone; a new send replaces the old one.
type PendingRepository interface {
	Put(ctx context.Context, pending *entity.PendingVerification)
	Find(ctx context.Context, phone string, purpose entity.PendingPurpose) *entity.PendingVerification
	MarkVerified(ctx context.Context, phone string, purpose entity.PendingPurpose) bool
	Delete(ctx context.Context, phone string)
}

type pendingRepository struct {
	mu      sync.Mutex
	pending map[string]*entity.PendingVerification // keyed by phone
	log     *zap.Logger
}

func NewPendingRepository(log *zap.Logger) PendingRepository {
	return &pendingRepository{
		pending: make(map[string]*entity.PendingVerification),
		log:     log.With(zap.String("repository", "pending")),
	}
}

func (r *pendingRepository) Put(_ context.Context, pending *entity.PendingVerification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *pending
	r.pending[pending.Phone] = &cp
}

func (r *pendingRepository) Find(_ context.Context, phone string, purpose entity.PendingPurpose) *entity.PendingVerification {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pending[phone]
	if !ok || p.Purpose != purpose {
		return nil
	}
	if p.Expired(time.Now()) {
		delete(r.pending, phone)
		return nil
	}
	cp := *p
	return &cp
}

func (r *pendingRepository) MarkVerified(_ context.Context, phone string, purpose entity.PendingPurpose) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pending[phone]
	if !ok || p.Purpose != purpose || p.Expired(time.Now()) {
		return false
	}
	p.Verified = true
	return true
}

func (r *pendingRepository) Delete(_ context.Context, phone string) {
	r.mu.Lock()
	delete(r.pending, phone)
	r.mu.Unlock()
}
