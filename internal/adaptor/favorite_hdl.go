package adaptor

import (
	"encoding/json"
	"net/http"

	"salon-booking/internal/dto/request"
	"salon-booking/internal/usecase"
	"salon-booking/pkg/utils"

	"go.uber.org/zap"
)

type FavoriteHandler struct {
	service usecase.FavoriteService
	log     *zap.Logger
}

func NewFavoriteHandler(service usecase.FavoriteService, log *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /api/favorites
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	phone, ok := utils.GetPhoneFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "No session")
		return
	}

	resp, err := h.service.List(r.Context(), phone)
	if err != nil {
		respondError(w, h.log, err, "list favorites")
		return
	}

	utils.ResponseSuccess(w, "Favorites retrieved", resp)
}

// Toggle handles POST /api/favorites
func (h *FavoriteHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	phone, ok := utils.GetPhoneFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "No session")
		return
	}

	var req request.ToggleFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Toggle(r.Context(), phone, req.SalonID)
	if err != nil {
		respondError(w, h.log, err, "toggle favorite")
		return
	}

	utils.ResponseSuccess(w, "Favorite updated", resp)
}
