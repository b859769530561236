package reservation

import (
	"time"

	domainReservation "reservation-api/internal/domain/reservation"
	"reservation-api/internal/usecase/auth"
)

type CreateReservationRequest struct {
	UserID      string `json:"userId"`
	TimeBlockID *int64 `json:"timeBlockId"`
	DateTime    string `json:"dateTime"`
}

// UpdateReservationRequest carries a partial update; nil fields keep their
// existing values.
type UpdateReservationRequest struct {
	TimeBlockID *int64  `json:"timeBlockId"`
	DateTime    *string `json:"dateTime"`
}

type TimeBlockResponse struct {
	ID        int64     `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// ReservationResponse is a reservation joined with its user and time block.
type ReservationResponse struct {
	ID          int64              `json:"id"`
	UserID      string             `json:"userId"`
	TimeBlockID int64              `json:"timeBlockId"`
	DateTime    time.Time          `json:"dateTime"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	User        *auth.UserResponse `json:"user,omitempty"`
	TimeBlock   *TimeBlockResponse `json:"timeBlock,omitempty"`
}

func ToReservationResponse(r *domainReservation.Reservation) *ReservationResponse {
	resp := &ReservationResponse{
		ID:          r.ID,
		UserID:      r.UserID.String(),
		TimeBlockID: r.TimeBlockID,
		DateTime:    r.DateTime,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.User != nil {
		resp.User = auth.ToUserResponse(r.User)
	}
	if r.TimeBlock != nil {
		resp.TimeBlock = &TimeBlockResponse{
			ID:        r.TimeBlock.ID,
			StartTime: r.TimeBlock.StartTime,
			EndTime:   r.TimeBlock.EndTime,
		}
	}
	return resp
}
