package request

type CreateBookingRequest struct {
	SalonID       string   `json:"salon_id" validate:"required"`
	Date          string   `json:"date" validate:"required"`
	Time          string   `json:"time" validate:"required"`
	Services      []string `json:"services" validate:"required,min=1,dive,required"`
	CustomerName  string   `json:"customer_name" validate:"omitempty,max=60"`
	CustomerPhone string   `json:"customer_phone" validate:"omitempty"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=200"`
}

// InlineFeedbackRequest is the quick rating shown on a completed booking
// card. Rating only, no comment or photos.
type InlineFeedbackRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

// RateBookingRequest is the full rate flow. Images arrive as multipart
// files and are decoded by the handler, not by this struct.
type RateBookingRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,min=1,max=500"`
}
