package reservation

import (
	"time"

	"github.com/google/uuid"

	"reservation-api/internal/domain/timeblock"
	"reservation-api/internal/domain/user"
)

// Reservation books a user against a specific time block and date-time.
// User and TimeBlock are populated on joined reads.
type Reservation struct {
	ID          int64
	UserID      uuid.UUID
	TimeBlockID int64
	DateTime    time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User      *user.User
	TimeBlock *timeblock.TimeBlock
}
