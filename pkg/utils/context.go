package utils

import "context"

type contextKey string

const (
	PhoneKey contextKey = "phone"
	TokenKey contextKey = "token"
)

func SetUserContext(ctx context.Context, phone string) context.Context {
	return context.WithValue(ctx, PhoneKey, phone)
}

// GetPhoneFromContext returns the authenticated user's phone number.
func GetPhoneFromContext(ctx context.Context) (string, bool) {
	phoneVal := ctx.Value(PhoneKey)
	if phoneVal == nil {
		return "", false
	}

	phone, ok := phoneVal.(string)
	if !ok || phone == "" {
		return "", false
	}

	return phone, true
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	tokenVal := ctx.Value(TokenKey)
	if tokenVal == nil {
		return "", false
	}

	token, ok := tokenVal.(string)
	return token, ok
}
