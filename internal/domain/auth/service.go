package auth

import (
	"context"
)

// AuthService verifies credentials against the employee directory and
// mints access tokens.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
