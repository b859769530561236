package postgres

import (
	"github.com/google/uuid"

	domainReservation "reservation-api/internal/domain/reservation"
	domainTimeblock "reservation-api/internal/domain/timeblock"
	domainUser "reservation-api/internal/domain/user"
	"reservation-api/internal/infrastructure/database/postgres/models"
)

func toUserModel(u *domainUser.User) *models.UserModel {
	return &models.UserModel{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Phone:          u.Phone,
		PasswordHashed: u.PasswordHashed,
		Role:           u.Role,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func toUserEntity(m *models.UserModel) *domainUser.User {
	return &domainUser.User{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		PasswordHashed: m.PasswordHashed,
		Role:           m.Role,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toTimeBlockModel(b *domainTimeblock.TimeBlock) *models.TimeBlockModel {
	return &models.TimeBlockModel{
		ID:        b.ID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toTimeBlockEntity(m *models.TimeBlockModel) *domainTimeblock.TimeBlock {
	return &domainTimeblock.TimeBlock{
		ID:        m.ID,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toReservationModel(r *domainReservation.Reservation) *models.ReservationModel {
	return &models.ReservationModel{
		ID:          r.ID,
		UserID:      r.UserID,
		TimeBlockID: r.TimeBlockID,
		DateTime:    r.DateTime,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toReservationEntity(m *models.ReservationModel) *domainReservation.Reservation {
	r := &domainReservation.Reservation{
		ID:          m.ID,
		UserID:      m.UserID,
		TimeBlockID: m.TimeBlockID,
		DateTime:    m.DateTime,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.User.ID != uuid.Nil {
		r.User = toUserEntity(&m.User)
	}
	if m.TimeBlock.ID != 0 {
		r.TimeBlock = toTimeBlockEntity(&m.TimeBlock)
	}
	return r
}
