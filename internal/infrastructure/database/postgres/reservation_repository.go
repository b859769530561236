package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	domainReservation "reservation-api/internal/domain/reservation"
	"reservation-api/internal/infrastructure/database/postgres/models"
)

// ReservationRepository implements the reservation domain Repository
// interface.
type ReservationRepository struct {
	db *DB
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db *DB) domainReservation.Repository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domainReservation.Reservation) error {
	res.CreatedAt = time.Now()
	res.UpdatedAt = time.Now()

	dbModel := toReservationModel(res)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		// The unique slot index catches bookings that raced past the
		// application-level conflict check.
		if strings.Contains(err.Error(), "duplicate key value") {
			return domainReservation.ErrSlotTaken
		}
		return fmt.Errorf("failed to create reservation: %w", err)
	}

	created, err := r.GetByID(ctx, dbModel.ID)
	if err != nil {
		return err
	}
	*res = *created

	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domainReservation.Reservation, error) {
	var dbModel models.ReservationModel
	err := r.db.DB.WithContext(ctx).
		Preload("User").
		Preload("TimeBlock").
		Where("id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainReservation.ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	return toReservationEntity(&dbModel), nil
}

func (r *ReservationRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*domainReservation.Reservation, error) {
	fields["updated_at"] = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.ReservationModel{}).
		Where("id = ?", id).
		Updates(fields)

	if result.Error != nil {
		if strings.Contains(result.Error.Error(), "duplicate key value") {
			return nil, domainReservation.ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to update reservation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domainReservation.ErrReservationNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) (*domainReservation.Reservation, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.ReservationModel{})

	if result.Error != nil {
		return nil, fmt.Errorf("failed to delete reservation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domainReservation.ErrReservationNotFound
	}

	return existing, nil
}

func (r *ReservationRepository) List(ctx context.Context) ([]*domainReservation.Reservation, error) {
	var dbModels []models.ReservationModel
	err := r.db.DB.WithContext(ctx).
		Preload("User").
		Preload("TimeBlock").
		Order("date_time").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	reservations := make([]*domainReservation.Reservation, 0, len(dbModels))
	for i := range dbModels {
		reservations = append(reservations, toReservationEntity(&dbModels[i]))
	}
	return reservations, nil
}

func (r *ReservationRepository) HasConflict(ctx context.Context, timeBlockID int64, dateTime time.Time, excludeID *int64) (bool, error) {
	query := r.db.DB.WithContext(ctx).
		Model(&models.ReservationModel{}).
		Where("time_block_id = ? AND date_time = ?", timeBlockID, dateTime)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slot conflict: %w", err)
	}
	return count > 0, nil
}
