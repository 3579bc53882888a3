package sheets

import (
	"testing"
	"time"

	"github.com/dakoku/timeclock-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() attendance.Event {
	return attendance.Event{
		EmployeeID:      "EMP001",
		EventType:       attendance.EventClockIn,
		Timestamp:       time.Date(2025, 11, 13, 0, 0, 0, 0, time.UTC),
		ClientTimestamp: "2025-11-13T09:00:00+09:00",
		DeviceInfo:      "kiosk-1",
	}
}

func TestEventRowValues_CanonicalHeader(t *testing.T) {
	header := []string{
		"employee_id", "event_type", "timestamp", "client_ts", "device_info",
		"edited_by", "edited_at", "edit_reason", "original_timestamp", "original_event_type",
	}
	cols, err := resolveEventColumns(header)
	require.NoError(t, err)

	values := eventRowValues(testEvent(), header, cols, nil)
	require.Len(t, values, len(header))
	assert.Equal(t, "EMP001", values[0])
	assert.Equal(t, "CLOCK_IN", values[1])
	assert.Equal(t, "2025-11-13T00:00:00Z", values[2])
	assert.Equal(t, "kiosk-1", values[4])
}

func TestEventRowValues_ReorderedHeaderRoundTrips(t *testing.T) {
	// Writes must follow the sheet's own layout, not an assumed order
	header := []string{"timestamp", "device_info", "employee_id", "event_type", "client_ts"}
	cols, err := resolveEventColumns(header)
	require.NoError(t, err)

	ev := testEvent()
	values := eventRowValues(ev, header, cols, nil)

	parsed, ok := parseEventRow(values, 2, cols)
	require.True(t, ok)
	assert.Equal(t, ev.EmployeeID, parsed.EmployeeID)
	assert.Equal(t, ev.EventType, parsed.EventType)
	assert.Equal(t, ev.Timestamp, parsed.Timestamp)
	assert.Equal(t, ev.ClientTimestamp, parsed.ClientTimestamp)
	assert.Equal(t, ev.DeviceInfo, parsed.DeviceInfo)
}

func TestEventRowValues_PreservesUnmappedCells(t *testing.T) {
	header := []string{"employee_id", "event_type", "timestamp", "notes"}
	cols, err := resolveEventColumns(header)
	require.NoError(t, err)

	existing := []string{"EMP001", "CLOCK_IN", "2025-11-13T00:00:00Z", "hand-entered note"}
	ev := testEvent()
	ev.EventType = attendance.EventClockOut

	values := eventRowValues(ev, header, cols, existing)
	assert.Equal(t, "CLOCK_OUT", values[1])
	assert.Equal(t, "hand-entered note", values[3])
}

func TestResolveEventColumns_MissingRequired(t *testing.T) {
	_, err := resolveEventColumns([]string{"employee_id", "event_type"})
	assert.Error(t, err)
}
