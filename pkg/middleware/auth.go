package middleware

import (
	"net/http"
	"strings"

	"salon-booking/internal/data/repository"
	"salon-booking/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession validates the Bearer session token and puts the owning phone
// number on the request context.
func AuthSession(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			session := sessionRepo.FindValid(r.Context(), token)
			if session == nil {
				logger.Warn("Invalid or expired session", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetUserContext(r.Context(), session.Phone)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthSession attaches the session identity when a valid token is
// present and lets the request through anonymously otherwise. Used on
// public routes whose responses are personalized for signed-in callers.
func OptionalAuthSession(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				next.ServeHTTP(w, r)
				return
			}

			session := sessionRepo.FindValid(r.Context(), parts[1])
			if session == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := utils.SetUserContext(r.Context(), session.Phone)
			ctx = utils.SetTokenContext(ctx, parts[1])
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
