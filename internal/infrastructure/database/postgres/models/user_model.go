package models

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the database model for User.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string    `gorm:"type:varchar(50);not null"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone          string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	PasswordHashed string    `gorm:"type:varchar(255);not null"`
	Role           string    `gorm:"type:varchar(20);not null;default:'USER'"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
