package timeblock

import "context"

// Repository defines the interface for time block operations.
type Repository interface {
	Create(ctx context.Context, block *TimeBlock) error
	GetByID(ctx context.Context, id int64) (*TimeBlock, error)
	List(ctx context.Context) ([]*TimeBlock, error)
}
