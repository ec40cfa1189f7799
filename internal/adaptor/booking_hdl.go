package adaptor

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"salon-booking/internal/dto/request"
	"salon-booking/internal/usecase"
	"salon-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxRateUpload bounds the multipart body of the rate flow.
const maxRateUpload = 10 << 20 // 10 MiB

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	phone, _ := utils.GetPhoneFromContext(r.Context())
	resp, err := h.service.Create(r.Context(), phone, &req)
	if err != nil {
		respondError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking confirmed", resp)
}

// List handles GET /api/bookings?status=all|upcoming|completed|cancelled
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	phone, _ := utils.GetPhoneFromContext(r.Context())

	resp, err := h.service.List(r.Context(), phone, r.URL.Query().Get("status"))
	if err != nil {
		respondError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", resp)
}

// Detail handles GET /api/bookings/{id}
func (h *BookingHandler) Detail(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Detail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "Booking retrieved", resp)
}

// Cancel handles POST /api/bookings/{id}/cancel
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	var req request.CancelBookingRequest
	// a bare cancel without a body is fine
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Cancel(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", resp)
}

// Feedback handles POST /api/bookings/{id}/feedback
func (h *BookingHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	var req request.InlineFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.InlineFeedback(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, h.log, err, "rate booking")
		return
	}

	utils.ResponseSuccess(w, "Feedback saved", resp)
}

// Rate handles POST /api/bookings/{id}/rate. The body is multipart: rating
// and comment fields plus up to three photos under "images".
func (h *BookingHandler) Rate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxRateUpload); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart body", nil)
		return
	}

	req := request.RateBookingRequest{
		Rating:  utils.ParseInt(r.FormValue("rating"), 0),
		Comment: r.FormValue("comment"),
	}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	var files []utils.NamedFile
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["images"] {
			f, err := header.Open()
			if err != nil {
				utils.ResponseBadRequest(w, "Unreadable image upload", nil)
				return
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				utils.ResponseBadRequest(w, "Unreadable image upload", nil)
				return
			}
			files = append(files, utils.NamedFile{Name: header.Filename, Data: data})
		}
	}

	images, encodeErr := utils.EncodeImageBatch(files)
	if encodeErr != nil {
		h.log.Warn("Some images rejected", zap.Error(encodeErr))
	}

	resp, err := h.service.Rate(r.Context(), chi.URLParam(r, "id"), req.Rating, req.Comment, images)
	if err != nil {
		respondError(w, h.log, err, "rate booking")
		return
	}

	if encodeErr != nil {
		// the rating and the encodable photos are saved; tell the caller
		// which uploads were dropped
		utils.ResponseJSON(w, http.StatusOK, true, "Rating saved, some images were rejected",
			resp, strings.Split(encodeErr.Error(), "\n"))
		return
	}

	utils.ResponseSuccess(w, "Rating saved", resp)
}

// Complete handles POST /api/admin/bookings/{id}/complete
func (h *BookingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Complete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err, "complete booking")
		return
	}

	utils.ResponseSuccess(w, "Booking completed", resp)
}
