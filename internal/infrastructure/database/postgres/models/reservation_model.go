package models

import (
	"time"

	"github.com/google/uuid"
)

// ReservationModel represents the database model for Reservation. The
// composite unique index on (time_block_id, date_time) backstops the
// application-level conflict check against concurrent bookings.
type ReservationModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	TimeBlockID int64     `gorm:"not null;uniqueIndex:idx_reservations_slot"`
	DateTime    time.Time `gorm:"not null;uniqueIndex:idx_reservations_slot"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	User      UserModel      `gorm:"foreignKey:UserID;references:ID"`
	TimeBlock TimeBlockModel `gorm:"foreignKey:TimeBlockID;references:ID"`
}

func (ReservationModel) TableName() string {
	return "reservations"
}
