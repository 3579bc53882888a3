package sheets

import (
	"fmt"
	"strings"
)

// Column mapping is resolved once per read from the header row, so the
// business logic never indexes cells by name.

type eventColumns struct {
	employeeID        int
	eventType         int
	timestamp         int
	clientTS          int
	deviceInfo        int
	editedBy          int
	editedAt          int
	editReason        int
	originalTimestamp int
	originalEventType int
}

func resolveEventColumns(header []string) (eventColumns, error) {
	cols := eventColumns{
		employeeID:        columnIndex(header, "employee_id", "employeeid"),
		eventType:         columnIndex(header, "event_type", "eventtype"),
		timestamp:         columnIndex(header, "timestamp"),
		clientTS:          columnIndex(header, "client_ts", "clientts"),
		deviceInfo:        columnIndex(header, "device_info", "deviceinfo"),
		editedBy:          columnIndex(header, "edited_by", "editedby"),
		editedAt:          columnIndex(header, "edited_at", "editedat"),
		editReason:        columnIndex(header, "edit_reason", "editreason"),
		originalTimestamp: columnIndex(header, "original_timestamp", "originaltimestamp"),
		originalEventType: columnIndex(header, "original_event_type", "originaleventtype"),
	}
	if cols.employeeID < 0 || cols.eventType < 0 || cols.timestamp < 0 {
		return eventColumns{}, fmt.Errorf("sheet %s is missing required columns", eventSheet)
	}
	return cols, nil
}

type employeeColumns struct {
	id           int
	name         int
	role         int
	department   int
	email        int
	passwordHash int
	isActive     int
	updatedAt    int
}

func resolveEmployeeColumns(header []string) (employeeColumns, error) {
	cols := employeeColumns{
		id:           columnIndex(header, "employee_id", "id"),
		name:         columnIndex(header, "name"),
		role:         columnIndex(header, "role"),
		department:   columnIndex(header, "department"),
		email:        columnIndex(header, "email"),
		passwordHash: columnIndex(header, "password_hash", "passwordhash"),
		isActive:     columnIndex(header, "is_active", "isactive"),
		updatedAt:    columnIndex(header, "updated_at", "updatedat"),
	}
	if cols.id < 0 {
		return employeeColumns{}, fmt.Errorf("sheet %s is missing required columns", employeeSheet)
	}
	return cols, nil
}

// columnIndex finds the first header cell matching any of names,
// case-insensitively. -1 when absent.
func columnIndex(header []string, names ...string) int {
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		for _, n := range names {
			if key == n {
				return i
			}
		}
	}
	return -1
}

// cell reads row[i] tolerating short rows; sheets trim trailing empties.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
