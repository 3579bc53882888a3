package employee

import (
	"context"
)

// EmployeeService defines directory operations for administrators.
type EmployeeService interface {
	// ListEmployees returns the full directory.
	ListEmployees(ctx context.Context) (ListEmployeesResponse, error)

	// UpdateEmployee applies a partial update to one record and returns
	// the refreshed view.
	UpdateEmployee(ctx context.Context, employeeID string, req UpdateEmployeeRequest) (EmployeeResponse, error)
}
