package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
