package adaptor

import (
	"encoding/json"
	"net/http"

	"salon-booking/internal/dto/request"
	"salon-booking/internal/usecase"
	"salon-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// SignIn handles POST /api/auth/sign-in
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req request.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.SignIn(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "sign in")
		return
	}

	utils.ResponseSuccess(w, "Signed in", resp)
}

// SignUpStart handles POST /api/auth/sign-up
func (h *AuthHandler) SignUpStart(w http.ResponseWriter, r *http.Request) {
	var req request.SignUpStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.SignUpStart(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "start sign up")
		return
	}

	utils.ResponseSuccess(w, "Verification code sent", resp)
}

// SignUpVerify handles POST /api/auth/sign-up/verify
func (h *AuthHandler) SignUpVerify(w http.ResponseWriter, r *http.Request) {
	var req request.SignUpVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.SignUpVerify(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "verify sign up")
		return
	}

	utils.ResponseCreated(w, "Account created", resp)
}

// ForgotStart handles POST /api/auth/forgot
func (h *AuthHandler) ForgotStart(w http.ResponseWriter, r *http.Request) {
	var req request.ForgotStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.ForgotStart(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "start password reset")
		return
	}

	utils.ResponseSuccess(w, "Reset code sent", resp)
}

// ForgotVerify handles POST /api/auth/forgot/verify
func (h *AuthHandler) ForgotVerify(w http.ResponseWriter, r *http.Request) {
	var req request.ForgotVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.ForgotVerify(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "verify password reset")
		return
	}

	utils.ResponseSuccess(w, "Code verified", resp)
}

// ForgotReset handles POST /api/auth/forgot/reset
func (h *AuthHandler) ForgotReset(w http.ResponseWriter, r *http.Request) {
	var req request.ForgotResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.ForgotReset(r.Context(), &req); err != nil {
		respondError(w, h.log, err, "reset password")
		return
	}

	utils.ResponseSuccess(w, "Password updated", nil)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "No session")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		respondError(w, h.log, err, "logout")
		return
	}

	utils.ResponseSuccess(w, "Signed out", nil)
}
