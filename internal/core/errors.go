package core

import "errors"

// Rejection reasons surfaced to the caller. None of these are retried
// automatically; the user is told why and decides what to do.
var (
	ErrAlreadyCheckedIn   = errors.New("entrada already recorded today")
	ErrAlreadyCheckedOut  = errors.New("salida already recorded today")
	ErrCheckInRequired    = errors.New("salida requires a prior entrada today")
	ErrLocationOutOfRange = errors.New("location outside every permitted area")
	ErrInvalidEventType   = errors.New("unknown attendance event type")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)
