package domain

import "errors"

var (
	ErrSlotNotFound    = errors.New("slot not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrSlotUnavailable = errors.New("slot not available")
)

var (
	ErrValidation = errors.New("validation error")
)
