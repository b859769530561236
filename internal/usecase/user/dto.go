package user

import (
	"time"

	domainUser "reservation-api/internal/domain/user"
)

// FileUserRequest carries the mutable fields of a legacy file-backed user.
// On update, empty fields keep their existing values.
type FileUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// DBUserResponse is a relational user with the password hash omitted.
type DBUserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToDBUserResponse(u *domainUser.User) *DBUserResponse {
	return &DBUserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
