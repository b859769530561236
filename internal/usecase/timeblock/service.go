package timeblock

import (
	"context"
	"time"

	"go.uber.org/zap"

	domainTimeblock "reservation-api/internal/domain/timeblock"
	"reservation-api/internal/logger"
	"reservation-api/pkg/utils"
)

// Service implements admin time block management.
type Service struct {
	timeblockRepo domainTimeblock.Repository
}

// NewService creates a new time block service
func NewService(timeblockRepo domainTimeblock.Repository) *Service {
	return &Service{timeblockRepo: timeblockRepo}
}

func (s *Service) Create(ctx context.Context, req *CreateTimeBlockRequest) (*TimeBlockResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, domainTimeblock.ErrInvalidTime
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, domainTimeblock.ErrInvalidTime
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, domainTimeblock.ErrInvalidTime
	}
	if !end.After(start) {
		return nil, domainTimeblock.ErrInvalidInterval
	}

	block := &domainTimeblock.TimeBlock{
		StartTime: start,
		EndTime:   end,
	}
	if err := s.timeblockRepo.Create(ctx, block); err != nil {
		return nil, err
	}

	logger.Info("Time block created",
		zap.Int64("time_block_id", block.ID),
		zap.Time("start_time", block.StartTime),
		zap.Time("end_time", block.EndTime),
		zap.String("event", "time_block_created"),
	)

	return ToTimeBlockResponse(block), nil
}

func (s *Service) List(ctx context.Context) ([]*TimeBlockResponse, error) {
	blocks, err := s.timeblockRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*TimeBlockResponse, 0, len(blocks))
	for _, b := range blocks {
		responses = append(responses, ToTimeBlockResponse(b))
	}
	return responses, nil
}
