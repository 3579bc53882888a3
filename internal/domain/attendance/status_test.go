package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evSeq(types ...EventType) []Event {
	base := time.Date(2025, 11, 13, 0, 0, 0, 0, time.UTC)
	events := make([]Event, 0, len(types))
	for i, et := range types {
		events = append(events, Event{
			EmployeeID: "EMP001",
			EventType:  et,
			Timestamp:  base.Add(time.Duration(i) * time.Hour),
		})
	}
	return events
}

func TestDeriveStatus_EmptySequence(t *testing.T) {
	assert.Equal(t, StatusNone, DeriveStatus(nil))
	assert.Equal(t, StatusNone, DeriveStatus([]Event{}))
}

func TestDeriveStatus_LastEventOnly(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   Status
	}{
		{"clock in", evSeq(EventClockIn), StatusWorking},
		{"break start", evSeq(EventClockIn, EventBreakStart), StatusBreak},
		{"break end", evSeq(EventClockIn, EventBreakStart, EventBreakEnd), StatusWorking},
		{"clock out", evSeq(EventClockIn, EventClockOut), StatusClockedOut},
		{"unknown type", evSeq(EventClockIn, EventType("LUNCH")), StatusNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.events))
		})
	}
}

func TestDeriveStatus_IgnoresEarlierEvents(t *testing.T) {
	// Same last event, wildly different prefixes
	a := evSeq(EventClockIn, EventBreakStart, EventBreakEnd, EventClockOut, EventClockIn)
	b := evSeq(EventClockIn)
	assert.Equal(t, DeriveStatus(b), DeriveStatus(a))
}

func TestValidateTransition_FullTable(t *testing.T) {
	all := []EventType{EventClockIn, EventClockOut, EventBreakStart, EventBreakEnd}
	allowed := map[Status]map[EventType]bool{
		StatusNone:       {EventClockIn: true},
		StatusWorking:    {EventBreakStart: true, EventClockOut: true},
		StatusBreak:      {EventBreakEnd: true},
		StatusClockedOut: {EventClockIn: true},
	}

	for status, row := range allowed {
		for _, et := range all {
			err := ValidateTransition(status, et)
			if row[et] {
				assert.NoError(t, err, "%s should accept %s", status, et)
			} else {
				assert.Error(t, err, "%s should reject %s", status, et)
			}
		}
	}
}

func TestValidateTransition_RejectionCarriesStatus(t *testing.T) {
	err := ValidateTransition(StatusBreak, EventClockOut)
	require.Error(t, err)

	var transitionErr *InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, StatusBreak, transitionErr.Current)
	assert.Equal(t, EventClockOut, transitionErr.Proposed)
	assert.Contains(t, transitionErr.Warnings()[0], "BREAK")
}

func TestValidateTransition_ReClockInAfterClockOut(t *testing.T) {
	// Multiple work sessions per day are allowed
	assert.NoError(t, ValidateTransition(StatusClockedOut, EventClockIn))
}
