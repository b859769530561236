package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainReservation "reservation-api/internal/domain/reservation"
	"reservation-api/internal/logger"
)

// Service implements the reservation lifecycle. The conflict check is an
// exact match on (timeBlockId, dateTime): partially overlapping slots
// within the same block are not treated as conflicts. That inherited rule
// is kept; the unique slot index in storage backstops the check-then-insert
// gap under concurrent bookings.
type Service struct {
	reservationRepo domainReservation.Repository
}

// NewService creates a new reservation service
func NewService(reservationRepo domainReservation.Repository) *Service {
	return &Service{reservationRepo: reservationRepo}
}

func (s *Service) Create(ctx context.Context, req *CreateReservationRequest) (*ReservationResponse, error) {
	if req.UserID == "" || req.TimeBlockID == nil || req.DateTime == "" {
		return nil, domainReservation.ErrMissingFields
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, domainReservation.ErrMissingFields
	}

	dateTime, err := time.Parse(time.RFC3339, req.DateTime)
	if err != nil {
		return nil, domainReservation.ErrInvalidDateTime
	}

	taken, err := s.reservationRepo.HasConflict(ctx, *req.TimeBlockID, dateTime, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domainReservation.ErrSlotTaken
	}

	r := &domainReservation.Reservation{
		UserID:      userID,
		TimeBlockID: *req.TimeBlockID,
		DateTime:    dateTime,
	}
	if err := s.reservationRepo.Create(ctx, r); err != nil {
		return nil, err
	}

	logger.Info("Reservation created",
		zap.Int64("reservation_id", r.ID),
		zap.Int64("time_block_id", r.TimeBlockID),
		zap.Time("date_time", r.DateTime),
		zap.String("event", "reservation_created"),
	)

	return ToReservationResponse(r), nil
}

func (s *Service) Get(ctx context.Context, id int64) (*ReservationResponse, error) {
	r, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToReservationResponse(r), nil
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateReservationRequest) (*ReservationResponse, error) {
	existing, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}

	targetBlock := existing.TimeBlockID
	targetDateTime := existing.DateTime

	if req.TimeBlockID != nil {
		targetBlock = *req.TimeBlockID
		fields["time_block_id"] = targetBlock
	}
	if req.DateTime != nil {
		parsed, err := time.Parse(time.RFC3339, *req.DateTime)
		if err != nil {
			return nil, domainReservation.ErrInvalidDateTime
		}
		targetDateTime = parsed
		fields["date_time"] = targetDateTime
	}

	if len(fields) == 0 {
		return ToReservationResponse(existing), nil
	}

	// Re-check the invariant for the merged target pair, skipping this
	// reservation's own row so an update to its current slot succeeds.
	taken, err := s.reservationRepo.HasConflict(ctx, targetBlock, targetDateTime, &id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domainReservation.ErrSlotTaken
	}

	updated, err := s.reservationRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	logger.Info("Reservation updated",
		zap.Int64("reservation_id", id),
		zap.String("event", "reservation_updated"),
	)

	return ToReservationResponse(updated), nil
}

func (s *Service) Delete(ctx context.Context, id int64) (*ReservationResponse, error) {
	deleted, err := s.reservationRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Info("Reservation deleted",
		zap.Int64("reservation_id", id),
		zap.String("event", "reservation_deleted"),
	)

	return ToReservationResponse(deleted), nil
}

// List returns all reservations joined with user and time block details.
func (s *Service) List(ctx context.Context) ([]*ReservationResponse, error) {
	reservations, err := s.reservationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		responses = append(responses, ToReservationResponse(r))
	}
	return responses, nil
}
