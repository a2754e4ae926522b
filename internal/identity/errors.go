package identity

import "errors"

// Service errors.
var (
	ErrEmailExists        = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrWeakPassword       = errors.New("new password must be at least 8 characters and contain a digit and an upper-case letter")
	ErrSamePassword       = errors.New("new password must differ from the current password")
)
