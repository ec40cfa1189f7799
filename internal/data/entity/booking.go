package entity

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusUpcoming  BookingStatus = "upcoming"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// StatusEquals compares booking statuses case-insensitively, which is the
// contract everywhere statuses are read.
func StatusEquals(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// BookedService is a snapshot of a salon service at booking time, annotated
// with its original index in the salon's service list.
type BookedService struct {
	Service
	Index int `json:"index"`
}

type Feedback struct {
	Rating  int      `json:"rating"` // 1-5
	Comment string   `json:"comment"`
	Images  []string `json:"images,omitempty"` // data URLs
}

type Booking struct {
	ID string `json:"id"`

	// weak reference into the catalog; name/address are denormalized
	// snapshots used as fallbacks when the salon can't be resolved
	SalonID      string `json:"salonId"`
	SalonName    string `json:"salonName"`
	SalonAddress string `json:"salonAddress"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`

	Date string `json:"date"` // calendar date, YYYY-MM-DD
	Time string `json:"time"` // clock time, independent of Date

	Services   []BookedService `json:"services"`
	TotalPrice int             `json:"totalPrice"`

	Status      BookingStatus `json:"status"`
	BookingDate time.Time     `json:"bookingDate"` // creation timestamp, recency key

	Feedback     *Feedback `json:"feedback,omitempty"`
	CancelReason string    `json:"cancelReason,omitempty"`
}

// RecencyKey is the instant bookings sort by: the creation timestamp when
// set, otherwise the appointment date, otherwise zero (sorts as earliest).
func (b *Booking) RecencyKey() time.Time {
	if !b.BookingDate.IsZero() {
		return b.BookingDate
	}
	if d, err := time.Parse("2006-01-02", b.Date); err == nil {
		return d
	}
	return time.Time{}
}
