package sheets

import (
	"context"
	"time"

	"github.com/dakoku/timeclock-backend-go/internal/domain/employee"
)

type employeeRepository struct {
	client *Client
}

func NewEmployeeRepository(client *Client) employee.EmployeeRepository {
	return &employeeRepository{
		client: client,
	}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, employeeID string) (employee.Employee, error) {
	rows, err := r.client.getSheetValues(ctx, employeeSheet)
	if err != nil {
		return employee.Employee{}, err
	}
	if len(rows) < 2 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	cols, err := resolveEmployeeColumns(rows[0])
	if err != nil {
		return employee.Employee{}, err
	}

	for i := 1; i < len(rows); i++ {
		if cell(rows[i], cols.id) == employeeID {
			return parseEmployeeRow(rows[i], i+1, cols), nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	rows, err := r.client.getSheetValues(ctx, employeeSheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return []employee.Employee{}, nil
	}

	cols, err := resolveEmployeeColumns(rows[0])
	if err != nil {
		return nil, err
	}

	employees := []employee.Employee{}
	for i := 1; i < len(rows); i++ {
		if cell(rows[i], cols.id) == "" {
			continue
		}
		employees = append(employees, parseEmployeeRow(rows[i], i+1, cols))
	}
	return employees, nil
}

// Update implements employee.EmployeeRepository. The row is rewritten in
// the sheet's own column layout; unmapped columns keep their cells.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	rows, err := r.client.getSheetValues(ctx, employeeSheet)
	if err != nil {
		return err
	}
	if len(rows) < 2 {
		return employee.ErrEmployeeNotFound
	}

	cols, err := resolveEmployeeColumns(rows[0])
	if err != nil {
		return err
	}

	rowIndex := -1
	for i := 1; i < len(rows); i++ {
		if cell(rows[i], cols.id) == emp.ID {
			rowIndex = i
			break
		}
	}
	if rowIndex == -1 {
		return employee.ErrEmployeeNotFound
	}

	header := rows[0]
	existing := rows[rowIndex]
	values := make([]string, len(header))
	for i := range header {
		values[i] = cell(existing, i)
	}
	setCell(values, cols.id, emp.ID)
	setCell(values, cols.name, emp.Name)
	setCell(values, cols.role, emp.Role)
	setCell(values, cols.department, emp.Department)
	setCell(values, cols.email, emp.Email)
	setCell(values, cols.passwordHash, emp.PasswordHash)
	setCell(values, cols.isActive, formatBool(emp.IsActive))
	setCell(values, cols.updatedAt, time.Now().UTC().Format(time.RFC3339))

	return r.client.updateRow(ctx, employeeSheet, rowIndex+1, values)
}

func parseEmployeeRow(row []string, rowNumber int, cols employeeColumns) employee.Employee {
	role := cell(row, cols.role)
	if role == "" {
		role = employee.RoleEmployee
	}
	return employee.Employee{
		RowNumber:    rowNumber,
		ID:           cell(row, cols.id),
		Name:         cell(row, cols.name),
		Role:         role,
		Department:   cell(row, cols.department),
		Email:        cell(row, cols.email),
		PasswordHash: cell(row, cols.passwordHash),
		IsActive:     cell(row, cols.isActive) == "TRUE",
	}
}

func setCell(values []string, i int, v string) {
	if i >= 0 && i < len(values) {
		values[i] = v
	}
}

func formatBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
