package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	domainUser "reservation-api/internal/domain/user"
)

// UserStore persists the legacy flat user list as a JSON file. It is a
// secondary dataset kept apart from the relational store; the whole file
// is read and rewritten on every mutation, guarded by a mutex.
type UserStore struct {
	path string
	mu   sync.RWMutex
}

// NewUserStore creates a file-backed user store at path.
func NewUserStore(path string) domainUser.FileRepository {
	return &UserStore{path: path}
}

func (s *UserStore) List() ([]domainUser.FileUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read()
}

func (s *UserStore) GetByNumericID(id int64) (*domainUser.FileUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].NumericID == id {
			return &users[i], nil
		}
	}
	return nil, domainUser.ErrUserNotFound
}

func (s *UserStore) Create(u domainUser.FileUser) (*domainUser.FileUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.read()
	if err != nil {
		return nil, err
	}

	u.UUID = uuid.New().String()
	u.NumericID = nextNumericID(users)

	users = append(users, u)
	if err := s.write(users); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) Update(id int64, u domainUser.FileUser) (*domainUser.FileUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.read()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].NumericID == id {
			users[i].Name = u.Name
			users[i].Email = u.Email
			users[i].Phone = u.Phone
			if err := s.write(users); err != nil {
				return nil, err
			}
			return &users[i], nil
		}
	}
	return nil, domainUser.ErrUserNotFound
}

func (s *UserStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.read()
	if err != nil {
		return err
	}

	kept := users[:0]
	for _, u := range users {
		if u.NumericID != id {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(users) {
		return domainUser.ErrUserNotFound
	}
	return s.write(kept)
}

// read loads the file; a missing file is an empty list.
func (s *UserStore) read() ([]domainUser.FileUser, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []domainUser.FileUser{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user file: %w", err)
	}
	if len(data) == 0 {
		return []domainUser.FileUser{}, nil
	}

	var users []domainUser.FileUser
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to parse user file: %w", err)
	}
	return users, nil
}

func (s *UserStore) write(users []domainUser.FileUser) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", domainUser.ErrFileStoreWrite, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", domainUser.ErrFileStoreWrite, err)
	}
	return nil
}

// nextNumericID assigns max(existing)+1. The historical store derived IDs
// from the clock and bumped on collision; sequential assignment keeps the
// IDs monotonic without the race.
func nextNumericID(users []domainUser.FileUser) int64 {
	var max int64
	for _, u := range users {
		if u.NumericID > max {
			max = u.NumericID
		}
	}
	return max + 1
}
