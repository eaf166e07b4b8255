package entity

import "errors"

var (
	ErrHotelNotFound        = errors.New("hotel not found")
	ErrRoomNotFound         = errors.New("room not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrBookingExists        = errors.New("booking already exists")
	ErrInvalidTransition    = errors.New("invalid booking status transition")
	ErrBookingNotConfirmed  = errors.New("booking not confirmed")
	ErrPaymentInProgress    = errors.New("payment already in progress")
	ErrConfirmationRequired = errors.New("cancellation requires confirmation")
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmailTaken           = errors.New("email already registered")
)
