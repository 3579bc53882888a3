package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials = errors.New("employee id or password is incorrect")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
