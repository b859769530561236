package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domainTimeblock "reservation-api/internal/domain/timeblock"
	"reservation-api/internal/infrastructure/database/postgres/models"
)

// TimeBlockRepository implements the timeblock domain Repository interface.
type TimeBlockRepository struct {
	db *DB
}

// NewTimeBlockRepository creates a new time block repository
func NewTimeBlockRepository(db *DB) domainTimeblock.Repository {
	return &TimeBlockRepository{db: db}
}

func (r *TimeBlockRepository) Create(ctx context.Context, b *domainTimeblock.TimeBlock) error {
	b.CreatedAt = time.Now()
	b.UpdatedAt = time.Now()

	dbModel := toTimeBlockModel(b)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create time block: %w", err)
	}

	b.ID = dbModel.ID
	b.CreatedAt = dbModel.CreatedAt
	b.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *TimeBlockRepository) GetByID(ctx context.Context, id int64) (*domainTimeblock.TimeBlock, error) {
	var dbModel models.TimeBlockModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainTimeblock.ErrTimeBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get time block: %w", err)
	}

	return toTimeBlockEntity(&dbModel), nil
}

func (r *TimeBlockRepository) List(ctx context.Context) ([]*domainTimeblock.TimeBlock, error) {
	var dbModels []models.TimeBlockModel
	if err := r.db.DB.WithContext(ctx).Order("start_time").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list time blocks: %w", err)
	}

	blocks := make([]*domainTimeblock.TimeBlock, 0, len(dbModels))
	for i := range dbModels {
		blocks = append(blocks, toTimeBlockEntity(&dbModels[i]))
	}
	return blocks, nil
}
