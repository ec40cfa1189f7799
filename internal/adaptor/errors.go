package adaptor

import (
	"errors"
	"net/http"

	"salon-booking/internal/usecase"
	"salon-booking/pkg/utils"

	"go.uber.org/zap"
)

// respondError maps service sentinels to HTTP statuses. Anything unmapped
// is a 500 with a generic body; the detail stays in the log.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrAccountNotFound),
		errors.Is(err, usecase.ErrSalonNotFound),
		errors.Is(err, usecase.ErrBookingNotFound),
		errors.Is(err, usecase.ErrLocationNotFound),
		errors.Is(err, usecase.ErrProfileMissing):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidPassword):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrAccountExists),
		errors.Is(err, usecase.ErrFeedbackExists),
		errors.Is(err, usecase.ErrOperationInFlight):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidPhone),
		errors.Is(err, usecase.ErrOTPMismatch),
		errors.Is(err, usecase.ErrNotVerified),
		errors.Is(err, usecase.ErrSalonClosed),
		errors.Is(err, usecase.ErrServiceUnknown),
		errors.Is(err, usecase.ErrBookingNotUpcoming),
		errors.Is(err, usecase.ErrBookingNotCompleted),
		errors.Is(err, usecase.ErrInvalidRating),
		errors.Is(err, usecase.ErrLanguageUnknown):
		log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
