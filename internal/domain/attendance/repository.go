package attendance

import (
	"context"
)

// EventRepository defines data access methods over the ordered attendance
// event log. Rows are keyed by their stable store row number.
type EventRepository interface {
	// ListEvents returns every event whose timestamp falls in the
	// inclusive local-day range [fromKey 00:00:00.000, toKey 23:59:59.999],
	// ascending by timestamp with store order preserved on ties.
	// employeeID == "" means all employees. Rows with missing or
	// unparseable timestamps are skipped, not errors.
	ListEvents(ctx context.Context, employeeID, fromKey, toKey string) ([]Event, error)

	// ListRecent returns up to limit most recent events for one employee,
	// in chronological order.
	ListRecent(ctx context.Context, employeeID string, limit int) ([]Event, error)

	// Get retrieves one event by row number, ErrEventNotFound if the row
	// does not exist or holds no usable event.
	Get(ctx context.Context, rowNumber int) (Event, error)

	// Append stores a new event and returns its assigned row number.
	Append(ctx context.Context, ev Event) (int, error)

	// Update overwrites the event at rowNumber, ErrEventNotFound if absent.
	Update(ctx context.Context, rowNumber int, ev Event) error

	// Delete removes the event at rowNumber, ErrEventNotFound if absent.
	Delete(ctx context.Context, rowNumber int) error
}
