package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"salon-booking/internal/data/entity"

	"go.uber.org/zap"
)

// StatusFilterAll matches every booking regardless of status.
const StatusFilterAll = "all"

// BookingRepository owns the authoritative in-session booking collection.
// All mutations happen under one lock, so no caller can observe a booking
// half-created or half-cancelled.
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id string) *entity.Booking

	// ListByStatus returns the phone's bookings whose status equals the
	// filter case-insensitively ("all" matches everything), ordered by
	// descending recency. Unparseable dates sort as earliest.
	ListByStatus(ctx context.Context, phone, filter string) []*entity.Booking

	// Cancel marks the booking cancelled and records the reason. Reports
	// false, leaving the collection unchanged, when the id is absent or the
	// booking is not upcoming.
	Cancel(ctx context.Context, id, reason string) bool

	// AttachFeedback sets feedback on the matching booking. A rating outside
	// 1..5, a missing id, or already-attached feedback makes it a no-op,
	// reported as false.
	AttachFeedback(ctx context.Context, id string, fb entity.Feedback) bool

	// Complete transitions an upcoming booking to completed. Administrative;
	// not reachable from the ordinary user flow.
	Complete(ctx context.Context, id string) bool
}

type bookingRepository struct {
	mu       sync.RWMutex
	bookings []*entity.Booking
	byID     map[string]*entity.Booking
	log      *zap.Logger
}

func NewBookingRepository(log *zap.Logger) BookingRepository {
	return &bookingRepository{
		byID: make(map[string]*entity.Booking),
		log:  log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(_ context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[booking.ID]; exists {
		return ErrDuplicateBookingID
	}

	cp := *booking
	r.bookings = append(r.bookings, &cp)
	r.byID[cp.ID] = &cp

	r.log.Info("Booking created",
		zap.String("booking_id", cp.ID),
		zap.String("salon_id", cp.SalonID),
		zap.Int("services", len(cp.Services)),
		zap.Int("total_price", cp.TotalPrice),
	)
	return nil
}

func (r *bookingRepository) FindByID(_ context.Context, id string) *entity.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return nil
	}
	cp := *b
	return &cp
}

func (r *bookingRepository) ListByStatus(_ context.Context, phone, filter string) []*entity.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filter = strings.TrimSpace(filter)
	if filter == "" {
		filter = StatusFilterAll
	}

	var out []*entity.Booking
	for _, b := range r.bookings {
		if phone != "" && b.CustomerPhone != phone {
			continue
		}
		if !entity.StatusEquals(filter, StatusFilterAll) && !entity.StatusEquals(string(b.Status), filter) {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}

	// most recent first; stable so ties keep creation order
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecencyKey().After(out[j].RecencyKey())
	})

	return out
}

func (r *bookingRepository) Cancel(_ context.Context, id, reason string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok || b.Status != entity.BookingStatusUpcoming {
		return false
	}

	b.Status = entity.BookingStatusCancelled
	b.CancelReason = reason

	r.log.Info("Booking cancelled",
		zap.String("booking_id", id),
		zap.String("reason", reason),
	)
	return true
}

func (r *bookingRepository) AttachFeedback(_ context.Context, id string, fb entity.Feedback) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok || fb.Rating < 1 || fb.Rating > 5 || b.Feedback != nil {
		return false
	}

	cp := fb
	b.Feedback = &cp

	r.log.Info("Feedback attached",
		zap.String("booking_id", id),
		zap.Int("rating", fb.Rating),
	)
	return true
}

func (r *bookingRepository) Complete(_ context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok || b.Status != entity.BookingStatusUpcoming {
		return false
	}

	b.Status = entity.BookingStatusCompleted
	return true
}
