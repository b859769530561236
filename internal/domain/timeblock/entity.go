package timeblock

import "time"

// TimeBlock is an admin-defined interval during which reservations may be
// booked.
type TimeBlock struct {
	ID        int64
	StartTime time.Time
	EndTime   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
