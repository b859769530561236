package user

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domainUser "reservation-api/internal/domain/user"
	"reservation-api/internal/logger"
)

// Service implements user use cases over both datasets: the relational
// users table (read-only here) and the legacy file-backed list.
type Service struct {
	userRepo domainUser.Repository
	fileRepo domainUser.FileRepository
}

// NewService creates a new user service
func NewService(userRepo domainUser.Repository, fileRepo domainUser.FileRepository) *Service {
	return &Service{
		userRepo: userRepo,
		fileRepo: fileRepo,
	}
}

// ListDBUsers returns all relational users with password hashes omitted.
func (s *Service) ListDBUsers(ctx context.Context) ([]*DBUserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*DBUserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToDBUserResponse(u))
	}
	return responses, nil
}

func (s *Service) ListFileUsers() ([]domainUser.FileUser, error) {
	return s.fileRepo.List()
}

func (s *Service) GetFileUser(id int64) (*domainUser.FileUser, error) {
	return s.fileRepo.GetByNumericID(id)
}

func (s *Service) CreateFileUser(req *FileUserRequest) (*domainUser.FileUser, error) {
	existing, err := s.fileRepo.List()
	if err != nil {
		return nil, err
	}

	candidate := CandidateUser{Name: req.Name, Email: req.Email, Phone: req.Phone}
	if iss := ValidateUserData(candidate, existing, nil); iss != nil {
		return nil, iss
	}

	created, err := s.fileRepo.Create(domainUser.FileUser{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create file user: %w", err)
	}

	logger.Info("File user created",
		zap.Int64("numeric_id", created.NumericID),
		zap.String("uuid", created.UUID),
	)

	return created, nil
}

func (s *Service) UpdateFileUser(id int64, req *FileUserRequest) (*domainUser.FileUser, error) {
	existing, err := s.fileRepo.GetByNumericID(id)
	if err != nil {
		return nil, err
	}

	// Provided fields overlay the stored record before validation, so a
	// partial update is validated as the full resulting user.
	merged := domainUser.FileUser{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if merged.Name == "" {
		merged.Name = existing.Name
	}
	if merged.Email == "" {
		merged.Email = existing.Email
	}
	if merged.Phone == "" {
		merged.Phone = existing.Phone
	}

	all, err := s.fileRepo.List()
	if err != nil {
		return nil, err
	}

	candidate := CandidateUser{Name: merged.Name, Email: merged.Email, Phone: merged.Phone}
	if iss := ValidateUserData(candidate, all, &id); iss != nil {
		return nil, iss
	}

	return s.fileRepo.Update(id, merged)
}

func (s *Service) DeleteFileUser(id int64) error {
	return s.fileRepo.Delete(id)
}
