package repository

import "errors"

var (
	ErrDuplicateBookingID = errors.New("duplicate booking id")
	ErrDuplicateSalonID   = errors.New("duplicate salon id in catalog")
	ErrAccountExists      = errors.New("account already registered")
	ErrAccountNotFound    = errors.New("account not found")
	ErrUnknownLanguage    = errors.New("unknown language")
)
