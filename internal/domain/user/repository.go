package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for relational user operations.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByPhone(ctx context.Context, phone string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}

// FileRepository defines the interface for the legacy file-backed user
// list. It is deliberately separate from Repository; the two datasets do
// not share records.
type FileRepository interface {
	List() ([]FileUser, error)
	GetByNumericID(id int64) (*FileUser, error)
	Create(u FileUser) (*FileUser, error)
	Update(id int64, u FileUser) (*FileUser, error)
	Delete(id int64) error
}
