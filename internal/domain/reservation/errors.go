package reservation

import "errors"

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrSlotTaken           = errors.New("the requested slot is already taken")
	ErrInvalidDateTime     = errors.New("invalid dateTime format")
	ErrMissingFields       = errors.New("userId, timeBlockId and dateTime are required")
)
