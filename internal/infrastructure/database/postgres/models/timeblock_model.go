package models

import "time"

// TimeBlockModel represents the database model for TimeBlock.
type TimeBlockModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	StartTime time.Time `gorm:"not null"`
	EndTime   time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (TimeBlockModel) TableName() string {
	return "time_blocks"
}
