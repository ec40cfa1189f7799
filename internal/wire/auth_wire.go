package wire

import (
	"salon-booking/internal/adaptor"
	"salon-booking/internal/data/repository"
	"salon-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(r chi.Router, h *adaptor.AuthHandler, repo *repository.Repository, log *zap.Logger) {
	r.Post("/api/auth/sign-in", h.SignIn)
	r.Post("/api/auth/sign-up", h.SignUpStart)
	r.Post("/api/auth/sign-up/verify", h.SignUpVerify)
	r.Post("/api/auth/forgot", h.ForgotStart)
	r.Post("/api/auth/forgot/verify", h.ForgotVerify)
	r.Post("/api/auth/forgot/reset", h.ForgotReset)

	r.With(middleware.AuthSession(repo.Session, log)).Post("/api/auth/logout", h.Logout)
}
