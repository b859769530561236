package timeblock

import (
	"time"

	domainTimeblock "reservation-api/internal/domain/timeblock"
)

type CreateTimeBlockRequest struct {
	StartTime string `json:"startTime" binding:"required" validate:"required"`
	EndTime   string `json:"endTime" binding:"required" validate:"required"`
}

type TimeBlockResponse struct {
	ID        int64     `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToTimeBlockResponse(b *domainTimeblock.TimeBlock) *TimeBlockResponse {
	return &TimeBlockResponse{
		ID:        b.ID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		CreatedAt: b.CreatedAt,
	}
}
