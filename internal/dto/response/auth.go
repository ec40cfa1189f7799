package response

import (
	"time"

	"salon-booking/internal/data/entity"
)

type AuthResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Profile   ProfileResponse `json:"profile"`
}

type OTPSentResponse struct {
	Phone string `json:"phone"`
	// Demo build: the code is returned so the flow can be exercised
	// without an SMS gateway.
	OTP string `json:"otp,omitempty"`
}

type VerifiedResponse struct {
	Phone    string `json:"phone"`
	Verified bool   `json:"verified"`
}

// Helper converters
func AuthToResponse(profile *entity.Profile, session *entity.Session) AuthResponse {
	resp := AuthResponse{
		Profile: ProfileToResponse(profile),
	}
	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}
	return resp
}
