package adaptor

import (
	"net/http"

	"salon-booking/internal/usecase"
	"salon-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

// Locations handles GET /api/locations
func (h *CatalogHandler) Locations(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Locations retrieved", h.service.Locations(r.Context()))
}

// List handles GET /api/salons?location=...&filter=...&q=...
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	if location == "" {
		utils.ResponseBadRequest(w, "location is required", nil)
		return
	}

	phone, _ := utils.GetPhoneFromContext(r.Context())
	salons, err := h.service.List(
		r.Context(),
		phone,
		location,
		r.URL.Query().Get("filter"),
		r.URL.Query().Get("q"),
	)
	if err != nil {
		respondError(w, h.log, err, "list salons")
		return
	}

	utils.ResponseSuccess(w, "Salons retrieved", salons)
}

// Detail handles GET /api/salons/{id}
func (h *CatalogHandler) Detail(w http.ResponseWriter, r *http.Request) {
	phone, _ := utils.GetPhoneFromContext(r.Context())

	detail, err := h.service.Detail(r.Context(), phone, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err, "get salon")
		return
	}

	utils.ResponseSuccess(w, "Salon retrieved", detail)
}
