package request

// Catalog filter identifiers, matching the chips on the browse screen.
const (
	FilterAll   = "all"
	FilterTop   = "top"
	FilterMen   = "men"
	FilterWomen = "women"
)

type ToggleFavoriteRequest struct {
	SalonID string `json:"salon_id" validate:"required"`
}
