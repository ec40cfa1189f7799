package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"salon-booking/internal/dto/request"
	"salon-booking/internal/usecase"
	"salon-booking/pkg/utils"

	"go.uber.org/zap"
)

// maxAvatarUpload bounds the avatar multipart body.
const maxAvatarUpload = 5 << 20 // 5 MiB

type ProfileHandler struct {
	service usecase.ProfileService
	locale  usecase.LocaleService
	log     *zap.Logger
}

func NewProfileHandler(service usecase.ProfileService, locale usecase.LocaleService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		locale:  locale,
		log:     log,
	}
}

// Get handles GET /api/profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Get(r.Context())
	if err != nil {
		respondError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved", resp)
}

// Update handles PUT /api/profile
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if req.Image != "" && !utils.IsDataURL(req.Image) {
		utils.ResponseBadRequest(w, "image must be a data URL", nil)
		return
	}

	resp, err := h.service.Update(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "Profile updated", resp)
}

// UpdateImage handles PUT /api/profile/image. The avatar arrives as a
// single multipart file under "image" and is stored as a data URL.
func (h *ProfileHandler) UpdateImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAvatarUpload); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart body", nil)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.ResponseBadRequest(w, "image file is required", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.ResponseBadRequest(w, "Unreadable image upload", nil)
		return
	}

	encoded, err := utils.EncodeImageBatch([]utils.NamedFile{{Name: header.Filename, Data: data}})
	if err != nil || len(encoded) == 0 {
		utils.ResponseBadRequest(w, "image must be a valid photo", nil)
		return
	}

	resp, err := h.service.UpdateImage(r.Context(), encoded[0])
	if err != nil {
		respondError(w, h.log, err, "update avatar")
		return
	}

	utils.ResponseSuccess(w, "Avatar updated", resp)
}

// Language handles GET /api/language
func (h *ProfileHandler) Language(w http.ResponseWriter, r *http.Request) {
	resp, err := h.locale.Language(r.Context())
	if err != nil {
		respondError(w, h.log, err, "get language")
		return
	}

	utils.ResponseSuccess(w, "Language retrieved", resp)
}

// SetLanguage handles PUT /api/language
func (h *ProfileHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var req request.SetLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.locale.SetLanguage(r.Context(), req.Language)
	if err != nil {
		respondError(w, h.log, err, "set language")
		return
	}

	utils.ResponseSuccess(w, "Language updated", resp)
}
