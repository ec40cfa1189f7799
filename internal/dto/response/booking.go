package response

import (
	"time"

	"salon-booking/internal/data/entity"
)

type BookedServiceResponse struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Duration string `json:"duration"`
	Category string `json:"category"`
	Index    int    `json:"index"`
}

type FeedbackResponse struct {
	Rating  int      `json:"rating"`
	Comment string   `json:"comment,omitempty"`
	Images  []string `json:"images,omitempty"`
}

type BookingResponse struct {
	ID            string                  `json:"id"`
	SalonID       string                  `json:"salon_id"`
	SalonName     string                  `json:"salon_name"`
	SalonAddress  string                  `json:"salon_address"`
	CustomerName  string                  `json:"customer_name"`
	CustomerPhone string                  `json:"customer_phone"`
	Date          string                  `json:"date"`
	Time          string                  `json:"time"`
	Services      []BookedServiceResponse `json:"services"`
	TotalPrice    int                     `json:"total_price"`
	Status        entity.BookingStatus    `json:"status"`
	BookingDate   string                  `json:"booking_date"`
	Feedback      *FeedbackResponse       `json:"feedback,omitempty"`
	CancelReason  string                  `json:"cancel_reason,omitempty"`
}

// Helper converters
func BookingToResponse(b *entity.Booking) BookingResponse {
	services := make([]BookedServiceResponse, 0, len(b.Services))
	for _, s := range b.Services {
		services = append(services, BookedServiceResponse{
			Name:     s.Name,
			Price:    s.Price,
			Duration: s.Duration,
			Category: string(s.Category),
			Index:    s.Index,
		})
	}

	resp := BookingResponse{
		ID:            b.ID,
		SalonID:       b.SalonID,
		SalonName:     b.SalonName,
		SalonAddress:  b.SalonAddress,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		Date:          b.Date,
		Time:          b.Time,
		Services:      services,
		TotalPrice:    b.TotalPrice,
		Status:        b.Status,
		BookingDate:   b.BookingDate.Format(time.RFC3339),
		CancelReason:  b.CancelReason,
	}

	if b.Feedback != nil {
		resp.Feedback = &FeedbackResponse{
			Rating:  b.Feedback.Rating,
			Comment: b.Feedback.Comment,
			Images:  append([]string(nil), b.Feedback.Images...),
		}
	}

	return resp
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingToResponse(b))
	}
	return out
}
