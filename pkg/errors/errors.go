package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrMissingFields  = errors.New("name, email and phone are required")
	ErrInvalidName    = errors.New("name must be between 3 and 50 characters")
	ErrInvalidEmail   = errors.New("invalid email format")
	ErrInvalidPhone   = errors.New("invalid phone format or length (7-15 digits)")
	ErrDuplicateEmail = errors.New("email is already registered")
	ErrDuplicatePhone = errors.New("phone is already registered")
)

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
