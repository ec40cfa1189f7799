package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is an authenticated login, kept in memory only.
type Session struct {
	ID        uuid.UUID
	Phone     string
	Token     uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

type PendingPurpose string

const (
	PurposeSignup        PendingPurpose = "signup"
	PurposePasswordReset PendingPurpose = "password_reset"
)

// PendingVerification holds the state of a sign-up or password-reset flow
// between the OTP send and the final step. Keyed by phone, one at a time.
type PendingVerification struct {
	Phone        string
	Purpose      PendingPurpose
	Name         string
	Email        string
	PasswordHash string
	Verified     bool
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

func (p *PendingVerification) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}
