package employee

import (
	"context"
)

// EmployeeRepository defines data access methods over the employee
// directory sheet.
type EmployeeRepository interface {
	// GetByID retrieves one employee, ErrEmployeeNotFound if absent.
	GetByID(ctx context.Context, employeeID string) (Employee, error)

	// List returns every employee in the directory.
	List(ctx context.Context) ([]Employee, error)

	// Update overwrites the stored record for emp.ID,
	// ErrEmployeeNotFound if absent.
	Update(ctx context.Context, emp Employee) error
}
