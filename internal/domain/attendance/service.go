package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// FetchStatus derives the employee's current status plus their recent
	// and today's events. Recomputed from the store on every call.
	FetchStatus(ctx context.Context, employeeID string) (StatusResponse, error)

	// RegisterEvent validates the proposed event against the derived
	// current status and appends it. Rejections leave the log untouched.
	RegisterEvent(ctx context.Context, employeeID string, req RegisterEventRequest) (StatusResponse, error)

	// ListMyEvents returns the employee's own rows in the inclusive
	// local-day range, with row numbers for correction.
	ListMyEvents(ctx context.Context, employeeID, fromKey, toKey string) (ListEventsResponse, error)

	// UpdateMyEvent corrects one of the employee's own rows, ErrNotOwner
	// for anyone else's.
	UpdateMyEvent(ctx context.Context, employeeID string, rowNumber int, req UpdateEventRequest) error

	// DeleteMyEvent removes one of the employee's own rows.
	DeleteMyEvent(ctx context.Context, employeeID string, rowNumber int) error

	// ListEvents returns any employee's rows in range (admin).
	// employeeID == "" means all employees.
	ListEvents(ctx context.Context, employeeID, fromKey, toKey string) (ListEventsResponse, error)

	// UpdateEvent corrects any row as a trusted override (admin). The
	// transition table is not consulted.
	UpdateEvent(ctx context.Context, editorID string, rowNumber int, req UpdateEventRequest) error

	// DeleteEvent removes any row (admin).
	DeleteEvent(ctx context.Context, rowNumber int) error
}
