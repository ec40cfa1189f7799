package repository

import (
	"context"
	"sync"
	"time"

	"salon-booking/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionRepository keeps login sessions in memory. Sessions do not survive
// a restart, matching the session-scoped nature of the demo.
type SessionRepository interface {
	Create(ctx context.Context, phone string, ttl time.Duration) *entity.Session
	FindValid(ctx context.Context, token string) *entity.Session
	Revoke(ctx context.Context, token string)
}

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session // keyed by token
	log      *zap.Logger
}

func NewSessionRepository(log *zap.Logger) SessionRepository {
	return &sessionRepository{
		sessions: make(map[string]*entity.Session),
		log:      log.With(zap.String("repository", "session")),
	}
}

func (r *sessionRepository) Create(_ context.Context, phone string, ttl time.Duration) *entity.Session {
	now := time.Now()
	session := &entity.Session{
		ID:        uuid.New(),
		Phone:     phone,
		Token:     uuid.New(),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	r.mu.Lock()
	r.sessions[session.Token.String()] = session
	r.mu.Unlock()

	r.log.Info("Session created", zap.String("phone", phone), zap.Time("expires_at", session.ExpiresAt))
	return session
}

func (r *sessionRepository) FindValid(_ context.Context, token string) *entity.Session {
	r.mu.RLock()
	session, ok := r.sessions[token]
	r.mu.RUnlock()

	if !ok {
		return nil
	}
	if session.Expired(time.Now()) {
		r.Revoke(context.Background(), token)
		return nil
	}
	return session
}

func (r *sessionRepository) Revoke(_ context.Context, token string) {
	r.mu.Lock()
	delete(r.sessions, token)
	r.mu.Unlock()
}
