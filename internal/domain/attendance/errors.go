package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	ErrEventNotFound    = errors.New("attendance event not found")
	ErrNotOwner         = errors.New("event does not belong to the requesting employee")
	ErrMissingDateRange = errors.New("from and to dates are required")
)

// InvalidTransitionError rejects a proposed event type that is not allowed
// from the employee's derived current status. No mutation happens when it
// is returned.
type InvalidTransitionError struct {
	Current  Status
	Proposed EventType
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s is not allowed while status is %s", e.Proposed, e.Current)
}

// Warnings returns the caller-facing warning payload for the rejection.
func (e *InvalidTransitionError) Warnings() []string {
	return []string{fmt.Sprintf("current status: %s", e.Current)}
}
