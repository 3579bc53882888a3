package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/dakoku/timeclock-backend-go/internal/domain/auth"
	"github.com/dakoku/timeclock-backend-go/internal/domain/employee"
	"github.com/dakoku/timeclock-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employees  employee.EmployeeRepository
	jwtService jwt.Service
}

func NewAuthService(employees employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		employees:  employees,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService. Unknown employees and wrong
// passwords collapse into the same credential error.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := a.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	if !emp.IsActive {
		return auth.LoginResponse{}, auth.ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(emp.ID, emp.Name, emp.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Employee: auth.EmployeeInfo{
			ID:   emp.ID,
			Name: emp.Name,
			Role: emp.Role,
		},
	}, nil
}
