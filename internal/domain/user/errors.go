package user

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailTaken     = errors.New("email is already registered")
	ErrPhoneTaken     = errors.New("phone is already registered")
	ErrFileStoreWrite = errors.New("failed to persist user file")
)
