package timeblock

import "errors"

var (
	ErrTimeBlockNotFound = errors.New("time block not found")
	ErrInvalidTime       = errors.New("invalid startTime or endTime format")
	ErrInvalidInterval   = errors.New("end time must be after start time")
)
