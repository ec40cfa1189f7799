package usecase

import (
	"context"
	"testing"

	"salon-booking/internal/dto/request"
	"salon-booking/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signUp(t *testing.T, svc *Service, phone, password string) *response.AuthResponse {
	t.Helper()
	ctx := context.Background()

	_, err := svc.Auth.SignUpStart(ctx, &request.SignUpStartRequest{
		Name:     "Asha",
		Phone:    phone,
		Password: password,
	})
	require.NoError(t, err)

	resp, err := svc.Auth.SignUpVerify(ctx, &request.SignUpVerifyRequest{
		Phone: phone,
		OTP:   "1234",
	})
	require.NoError(t, err)
	return resp
}

func TestSignUpFlow(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	resp := signUp(t, svc, "9999999999", "123456")

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Asha", resp.Profile.Name)
	assert.Equal(t, "9999999999", resp.Profile.Phone)

	// the session is live
	session := repo.Session.FindValid(ctx, resp.Token)
	require.NotNil(t, session)
	assert.Equal(t, "9999999999", session.Phone)

	// the account is on disk with a hashed password
	account, err := repo.Account.FindByPhone(ctx, "9999999999")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.NotEqual(t, "123456", account.Password)
}

func TestSignUpDuplicatePhone(t *testing.T) {
	svc, _, _ := newTestService(t)

	signUp(t, svc, "9999999999", "123456")

	_, err := svc.Auth.SignUpStart(context.Background(), &request.SignUpStartRequest{
		Name:     "Someone Else",
		Phone:    "9999999999",
		Password: "abcdef",
	})
	assert.ErrorIs(t, err, ErrAccountExists)
}

func TestSignUpWrongOTP(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Auth.SignUpStart(ctx, &request.SignUpStartRequest{
		Name:     "Asha",
		Phone:    "9999999999",
		Password: "123456",
	})
	require.NoError(t, err)

	_, err = svc.Auth.SignUpVerify(ctx, &request.SignUpVerifyRequest{
		Phone: "9999999999",
		OTP:   "0000",
	})
	assert.ErrorIs(t, err, ErrOTPMismatch)

	// verify without a pending sign-up
	_, err = svc.Auth.SignUpVerify(ctx, &request.SignUpVerifyRequest{
		Phone: "7777777777",
		OTP:   "1234",
	})
	assert.ErrorIs(t, err, ErrOTPMismatch)
}

func TestSignUpShortPhone(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Auth.SignUpStart(context.Background(), &request.SignUpStartRequest{
		Name:     "Asha",
		Phone:    "12345",
		Password: "123456",
	})
	assert.ErrorIs(t, err, ErrInvalidPhone)
}

func TestSignIn(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	signUp(t, svc, "9999999999", "123456")

	// formatting characters in the phone are ignored
	resp, err := svc.Auth.SignIn(ctx, &request.SignInRequest{
		Phone:    "+99 999 99-999",
		Password: "123456",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Auth.SignIn(ctx, &request.SignInRequest{
		Phone:    "9999999999",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidPassword)

	_, err = svc.Auth.SignIn(ctx, &request.SignInRequest{
		Phone:    "0000000000",
		Password: "123456",
	})
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestForgotPasswordFlow(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	signUp(t, svc, "9999999999", "123456")

	// unknown accounts are rejected before any code is sent
	_, err := svc.Auth.ForgotStart(ctx, &request.ForgotStartRequest{Phone: "0000000000"})
	assert.ErrorIs(t, err, ErrAccountNotFound)

	_, err = svc.Auth.ForgotStart(ctx, &request.ForgotStartRequest{Phone: "9999999999"})
	require.NoError(t, err)

	// reset before verification is refused
	err = svc.Auth.ForgotReset(ctx, &request.ForgotResetRequest{
		Phone:           "9999999999",
		NewPassword:     "newpass",
		ConfirmPassword: "newpass",
	})
	assert.ErrorIs(t, err, ErrNotVerified)

	verified, err := svc.Auth.ForgotVerify(ctx, &request.ForgotVerifyRequest{
		Phone: "9999999999",
		OTP:   "1234",
	})
	require.NoError(t, err)
	assert.True(t, verified.Verified)

	require.NoError(t, svc.Auth.ForgotReset(ctx, &request.ForgotResetRequest{
		Phone:           "9999999999",
		NewPassword:     "newpass",
		ConfirmPassword: "newpass",
	}))

	// old password is gone, new one works
	_, err = svc.Auth.SignIn(ctx, &request.SignInRequest{Phone: "9999999999", Password: "123456"})
	assert.ErrorIs(t, err, ErrInvalidPassword)

	_, err = svc.Auth.SignIn(ctx, &request.SignInRequest{Phone: "9999999999", Password: "newpass"})
	assert.NoError(t, err)
}

func TestForgotVerifyWrongOTP(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	signUp(t, svc, "9999999999", "123456")

	_, err := svc.Auth.ForgotStart(ctx, &request.ForgotStartRequest{Phone: "9999999999"})
	require.NoError(t, err)

	_, err = svc.Auth.ForgotVerify(ctx, &request.ForgotVerifyRequest{
		Phone: "9999999999",
		OTP:   "9876",
	})
	assert.ErrorIs(t, err, ErrOTPMismatch)
}

func TestLogout(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	resp := signUp(t, svc, "9999999999", "123456")

	require.NoError(t, svc.Auth.Logout(ctx, resp.Token))

	assert.Nil(t, repo.Session.FindValid(ctx, resp.Token))

	profile, err := repo.Profile.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)
}
