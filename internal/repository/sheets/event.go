package sheets

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dakoku/timeclock-backend-go/internal/domain/attendance"
	"github.com/dakoku/timeclock-backend-go/internal/pkg/timeutil"
)

type eventRepository struct {
	client        *Client
	offsetMinutes int
}

func NewEventRepository(client *Client, offsetMinutes int) attendance.EventRepository {
	return &eventRepository{
		client:        client,
		offsetMinutes: offsetMinutes,
	}
}

// ListEvents implements attendance.EventRepository. Rows with missing or
// unparseable timestamps are skipped; the lenient-read policy lives here
// and nowhere else.
func (r *eventRepository) ListEvents(ctx context.Context, employeeID, fromKey, toKey string) ([]attendance.Event, error) {
	from, _, err := timeutil.LocalDayBounds(fromKey, r.offsetMinutes)
	if err != nil {
		return nil, err
	}
	_, to, err := timeutil.LocalDayBounds(toKey, r.offsetMinutes)
	if err != nil {
		return nil, err
	}

	rows, err := r.client.getSheetValues(ctx, eventSheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return []attendance.Event{}, nil
	}

	cols, err := resolveEventColumns(rows[0])
	if err != nil {
		return nil, err
	}

	events := []attendance.Event{}
	for i := 1; i < len(rows); i++ {
		ev, ok := parseEventRow(rows[i], i+1, cols)
		if !ok {
			continue
		}
		if employeeID != "" && ev.EmployeeID != employeeID {
			continue
		}
		// Closed interval: both endpoints belong to the range.
		if ev.Timestamp.Before(from) || ev.Timestamp.After(to) {
			continue
		}
		events = append(events, ev)
	}

	sortByTimestamp(events)
	return events, nil
}

// ListRecent implements attendance.EventRepository.
func (r *eventRepository) ListRecent(ctx context.Context, employeeID string, limit int) ([]attendance.Event, error) {
	rows, err := r.client.getSheetValues(ctx, eventSheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return []attendance.Event{}, nil
	}

	cols, err := resolveEventColumns(rows[0])
	if err != nil {
		return nil, err
	}

	events := []attendance.Event{}
	for i := 1; i < len(rows); i++ {
		ev, ok := parseEventRow(rows[i], i+1, cols)
		if !ok || ev.EmployeeID != employeeID {
			continue
		}
		events = append(events, ev)
	}

	sortByTimestamp(events)
	if limit > 0 && len(events) > limit {
		events = events[len(events)-limit:]
	}
	return events, nil
}

// Get implements attendance.EventRepository.
func (r *eventRepository) Get(ctx context.Context, rowNumber int) (attendance.Event, error) {
	rows, err := r.client.getSheetValues(ctx, eventSheet)
	if err != nil {
		return attendance.Event{}, err
	}
	if rowNumber < 2 || rowNumber > len(rows) {
		return attendance.Event{}, attendance.ErrEventNotFound
	}

	cols, err := resolveEventColumns(rows[0])
	if err != nil {
		return attendance.Event{}, err
	}

	ev, ok := parseEventRow(rows[rowNumber-1], rowNumber, cols)
	if !ok {
		return attendance.Event{}, attendance.ErrEventNotFound
	}
	return ev, nil
}

// Append implements attendance.EventRepository. The row is laid out per
// the sheet's own header so a reordered sheet stays consistent.
func (r *eventRepository) Append(ctx context.Context, ev attendance.Event) (int, error) {
	rows, err := r.client.getSheetValues(ctx, eventSheet)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("sheet %s has no header row", eventSheet)
	}

	cols, err := resolveEventColumns(rows[0])
	if err != nil {
		return 0, err
	}

	return r.client.appendRow(ctx, eventSheet, eventRowValues(ev, rows[0], cols, nil))
}

// Update implements attendance.EventRepository. Like Append, the write
// follows the header layout; unmapped columns keep their cells.
func (r *eventRepository) Update(ctx context.Context, rowNumber int, ev attendance.Event) error {
	rows, err := r.client.getSheetValues(ctx, eventSheet)
	if err != nil {
		return err
	}
	if rowNumber < 2 || rowNumber > len(rows) {
		return attendance.ErrEventNotFound
	}

	cols, err := resolveEventColumns(rows[0])
	if err != nil {
		return err
	}

	values := eventRowValues(ev, rows[0], cols, rows[rowNumber-1])
	return r.client.updateRow(ctx, eventSheet, rowNumber, values)
}

// Delete implements attendance.EventRepository.
func (r *eventRepository) Delete(ctx context.Context, rowNumber int) error {
	if err := r.checkRowExists(ctx, rowNumber); err != nil {
		return err
	}
	return r.client.deleteRow(ctx, eventSheet, rowNumber)
}

func (r *eventRepository) checkRowExists(ctx context.Context, rowNumber int) error {
	rows, err := r.client.getSheetValues(ctx, eventSheet)
	if err != nil {
		return err
	}
	if rowNumber < 2 || rowNumber > len(rows) {
		return attendance.ErrEventNotFound
	}
	return nil
}

// eventRowValues lays an event out in the sheet's own column order,
// preserving existing cells outside the mapped columns.
func eventRowValues(ev attendance.Event, header []string, cols eventColumns, existing []string) []string {
	values := make([]string, len(header))
	for i := range header {
		values[i] = cell(existing, i)
	}
	setCell(values, cols.employeeID, ev.EmployeeID)
	setCell(values, cols.eventType, string(ev.EventType))
	setCell(values, cols.timestamp, ev.Timestamp.UTC().Format(time.RFC3339))
	setCell(values, cols.clientTS, ev.ClientTimestamp)
	setCell(values, cols.deviceInfo, ev.DeviceInfo)
	setCell(values, cols.editedBy, ev.EditedBy)
	setCell(values, cols.editedAt, ev.EditedAt)
	setCell(values, cols.editReason, ev.EditReason)
	setCell(values, cols.originalTimestamp, ev.OriginalTimestamp)
	setCell(values, cols.originalEventType, ev.OriginalEventType)
	return values
}

func parseEventRow(row []string, rowNumber int, cols eventColumns) (attendance.Event, bool) {
	raw := cell(row, cols.timestamp)
	if raw == "" {
		return attendance.Event{}, false
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		ts, err = time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return attendance.Event{}, false
		}
	}

	return attendance.Event{
		RowNumber:         rowNumber,
		EmployeeID:        cell(row, cols.employeeID),
		EventType:         attendance.EventType(cell(row, cols.eventType)),
		Timestamp:         ts.UTC(),
		ClientTimestamp:   cell(row, cols.clientTS),
		DeviceInfo:        cell(row, cols.deviceInfo),
		EditedBy:          cell(row, cols.editedBy),
		EditedAt:          cell(row, cols.editedAt),
		EditReason:        cell(row, cols.editReason),
		OriginalTimestamp: cell(row, cols.originalTimestamp),
		OriginalEventType: cell(row, cols.originalEventType),
	}, true
}

// sortByTimestamp orders ascending; the stable sort keeps sheet order for
// equal timestamps.
func sortByTimestamp(events []attendance.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
}
