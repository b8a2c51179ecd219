package auth

import "errors"

var (
	ErrUserAlreadyExists  = errors.New("user is already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
