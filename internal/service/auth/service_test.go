package auth

import (
	"context"
	"testing"

	"github.com/dakoku/timeclock-backend-go/internal/domain/auth"
	"github.com/dakoku/timeclock-backend-go/internal/domain/employee"
	"github.com/dakoku/timeclock-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt"

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, employeeID string) (employee.Employee, error) {
	emp, ok := f.employees[employeeID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	out := []employee.Employee{}
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	if _, ok := f.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.employees[emp.ID] = emp
	return nil
}

func seedEmployee(t *testing.T, id, password string, active bool) employee.Employee {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return employee.Employee{
		RowNumber:    2,
		ID:           id,
		Name:         "Test Employee",
		Role:         employee.RoleEmployee,
		PasswordHash: string(hash),
		IsActive:     active,
	}
}

func TestLogin_Success(t *testing.T) {
	repo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": seedEmployee(t, "EMP001", "correct-password", true),
	}}
	svc := NewAuthService(repo, jwt.NewJWTService(testSecret, "30m"))

	result, err := svc.Login(context.Background(), auth.LoginRequest{
		EmployeeID: "EMP001",
		Password:   "correct-password",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.NotZero(t, result.ExpiresAt)
	assert.Equal(t, "EMP001", result.Employee.ID)
	assert.Equal(t, employee.RoleEmployee, result.Employee.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": seedEmployee(t, "EMP001", "correct-password", true),
	}}
	svc := NewAuthService(repo, jwt.NewJWTService(testSecret, "30m"))

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		EmployeeID: "EMP001",
		Password:   "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmployeeSameError(t *testing.T) {
	svc := NewAuthService(&fakeEmployeeRepo{employees: map[string]employee.Employee{}},
		jwt.NewJWTService(testSecret, "30m"))

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		EmployeeID: "GHOST",
		Password:   "whatever",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_DisabledAccount(t *testing.T) {
	repo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"EMP001": seedEmployee(t, "EMP001", "correct-password", false),
	}}
	svc := NewAuthService(repo, jwt.NewJWTService(testSecret, "30m"))

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		EmployeeID: "EMP001",
		Password:   "correct-password",
	})
	assert.ErrorIs(t, err, auth.ErrAccountDisabled)
}

func TestLogin_MissingFields(t *testing.T) {
	svc := NewAuthService(&fakeEmployeeRepo{employees: map[string]employee.Employee{}},
		jwt.NewJWTService(testSecret, "30m"))

	_, err := svc.Login(context.Background(), auth.LoginRequest{})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}
