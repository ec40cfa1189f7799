package usecase

import "errors"

// Sentinel errors returned by the services. Handlers map these to HTTP
// statuses with errors.Is.
var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountExists     = errors.New("account already registered")
	ErrInvalidPassword   = errors.New("invalid credentials")
	ErrOTPMismatch       = errors.New("invalid or expired code")
	ErrNotVerified       = errors.New("verification incomplete")
	ErrOperationInFlight = errors.New("operation already in progress")
	ErrInvalidPhone      = errors.New("phone must have at least 10 digits")

	ErrSalonNotFound    = errors.New("salon not found")
	ErrSalonClosed      = errors.New("salon is closed")
	ErrServiceUnknown   = errors.New("service not offered by salon")
	ErrLocationNotFound = errors.New("location not found")

	ErrBookingNotFound     = errors.New("booking not found")
	ErrBookingNotUpcoming  = errors.New("booking is not upcoming")
	ErrBookingNotCompleted = errors.New("booking is not completed")
	ErrFeedbackExists      = errors.New("feedback already submitted")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")

	ErrLanguageUnknown = errors.New("language not supported")
	ErrProfileMissing  = errors.New("no profile saved")
)
