package domain

import "errors"

var (
	ErrValidation       = errors.New("fields required")
	ErrSeatTaken        = errors.New("seat already reserved for this flight")
	ErrAircraftNotFound = errors.New("aircraft not found")
	ErrFlightNotFound   = errors.New("flight not found")
)
