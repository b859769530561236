package reservation

import (
	"context"
	"time"
)

// Repository defines the interface for reservation operations. Reads
// return reservations joined with their user and time block.
type Repository interface {
	Create(ctx context.Context, r *Reservation) error
	GetByID(ctx context.Context, id int64) (*Reservation, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*Reservation, error)
	Delete(ctx context.Context, id int64) (*Reservation, error)
	List(ctx context.Context) ([]*Reservation, error)

	// HasConflict reports whether another reservation already holds the
	// exact (timeBlockID, dateTime) pair. excludeID skips the reservation
	// being updated; pass nil on create.
	HasConflict(ctx context.Context, timeBlockID int64, dateTime time.Time, excludeID *int64) (bool, error)
}
