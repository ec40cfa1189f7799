package utils

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUIDString() string {
	return uuid.New().String()
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== BOOKING ID ====================

var bookingSeq atomic.Uint64

// GenerateBookingID creates a unique booking ID from wall clock plus a
// monotonic counter, so two bookings created within the same clock tick
// still get distinct IDs.
func GenerateBookingID() string {
	now := time.Now()
	seq := bookingSeq.Add(1)

	// Format: BK-YYYYMMDD-HHMMSS-SEQ
	return fmt.Sprintf("BK-%s-%s-%04d", now.Format("20060102"), now.Format("150405"), seq)
}
