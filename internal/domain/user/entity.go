package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account in the relational store.
type User struct {
	ID             uuid.UUID
	Name           string
	Email          string
	Phone          string
	PasswordHashed string
	Role           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// FileUser is a record of the legacy file-backed user list. It is a
// secondary dataset, independent of the relational users table, and keeps
// the wire field names the historical JSON file used.
type FileUser struct {
	UUID      string `json:"uuid"`
	NumericID int64  `json:"numericId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}
