package employee

// Role values as stored in the directory sheet.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

type Employee struct {
	RowNumber    int
	ID           string
	Name         string
	Role         string
	Department   string
	Email        string
	PasswordHash string
	IsActive     bool
}

// IsAdmin reports whether the employee holds the admin role.
func (e Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}
