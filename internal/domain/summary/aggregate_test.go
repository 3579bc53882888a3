package summary

import (
	"testing"
	"time"

	"github.com/dakoku/timeclock-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 11, 13, hour, min, 0, 0, time.UTC)
}

func event(et attendance.EventType, ts time.Time) attendance.Event {
	return attendance.Event{EmployeeID: "EMP001", EventType: et, Timestamp: ts}
}

func TestAggregateDay_StandardDayWithBreak(t *testing.T) {
	// 9:00-18:00 with a 12:00-13:00 break: 480 work, 60 break, 0 overtime
	events := []attendance.Event{
		event(attendance.EventClockIn, at(9, 0)),
		event(attendance.EventBreakStart, at(12, 0)),
		event(attendance.EventBreakEnd, at(13, 0)),
		event(attendance.EventClockOut, at(18, 0)),
	}

	work, brk, overtime := AggregateDay(events, at(23, 0))
	assert.Equal(t, 480, work)
	assert.Equal(t, 60, brk)
	assert.Equal(t, 0, overtime)
}

func TestAggregateDay_OvertimeBoundary(t *testing.T) {
	// 500 worked minutes -> 20 overtime
	events := []attendance.Event{
		event(attendance.EventClockIn, at(9, 0)),
		event(attendance.EventClockOut, at(17, 20)),
	}
	work, _, overtime := AggregateDay(events, at(23, 0))
	assert.Equal(t, 500, work)
	assert.Equal(t, 20, overtime)

	// Exactly 480 -> 0 overtime
	events = []attendance.Event{
		event(attendance.EventClockIn, at(9, 0)),
		event(attendance.EventClockOut, at(17, 0)),
	}
	work, _, overtime = AggregateDay(events, at(23, 0))
	assert.Equal(t, 480, work)
	assert.Equal(t, 0, overtime)
}

func TestAggregateDay_LiveAccrualWhileOpen(t *testing.T) {
	// Clocked in at 9:00, no clock out: work accrues to evaluatedAt
	events := []attendance.Event{
		event(attendance.EventClockIn, at(9, 0)),
	}
	work, brk, _ := AggregateDay(events, at(11, 30))
	assert.Equal(t, 150, work)
	assert.Equal(t, 0, brk)
}

func TestAggregateDay_OpenBreakDoesNotAccrue(t *testing.T) {
	// On break at the end of the sequence: neither work nor break grow
	events := []attendance.Event{
		event(attendance.EventClockIn, at(9, 0)),
		event(attendance.EventBreakStart, at(12, 0)),
	}
	work, brk, _ := AggregateDay(events, at(15, 0))
	assert.Equal(t, 180, work)
	assert.Equal(t, 0, brk)
}

func TestAggregateDay_UnmatchedBreakEventsIgnored(t *testing.T) {
	// BREAK_END with no open break
	events := []attendance.Event{
		event(attendance.EventClockIn, at(9, 0)),
		event(attendance.EventBreakEnd, at(10, 0)),
		event(attendance.EventClockOut, at(17, 0)),
	}
	work, brk, _ := AggregateDay(events, at(23, 0))
	assert.Equal(t, 480, work)
	assert.Equal(t, 0, brk)

	// BREAK_START with no open work
	events = []attendance.Event{
		event(attendance.EventBreakStart, at(9, 0)),
		event(attendance.EventClockIn, at(10, 0)),
		event(attendance.EventClockOut, at(12, 0)),
	}
	work, brk, _ = AggregateDay(events, at(23, 0))
	assert.Equal(t, 120, work)
	assert.Equal(t, 0, brk)
}

func TestAggregateDay_NegativeDeltaClampedToZero(t *testing.T) {
	// Out-of-order pair after an admin edit cannot drive totals negative
	events := []attendance.Event{
		event(attendance.EventClockIn, at(18, 0)),
		event(attendance.EventClockOut, at(9, 0)),
	}
	work, brk, overtime := AggregateDay(events, at(23, 0))
	assert.Equal(t, 0, work)
	assert.Equal(t, 0, brk)
	assert.Equal(t, 0, overtime)
}

func TestAggregateDay_MinutesFloored(t *testing.T) {
	events := []attendance.Event{
		event(attendance.EventClockIn, at(9, 0)),
		{EmployeeID: "EMP001", EventType: attendance.EventClockOut,
			Timestamp: time.Date(2025, 11, 13, 9, 30, 59, 0, time.UTC)},
	}
	work, _, _ := AggregateDay(events, at(23, 0))
	assert.Equal(t, 30, work)
}

func TestAggregateDay_MultipleSessions(t *testing.T) {
	events := []attendance.Event{
		event(attendance.EventClockIn, at(9, 0)),
		event(attendance.EventClockOut, at(12, 0)),
		event(attendance.EventClockIn, at(14, 0)),
		event(attendance.EventClockOut, at(17, 0)),
	}
	work, _, _ := AggregateDay(events, at(23, 0))
	assert.Equal(t, 360, work)
}

func TestAggregateDay_Empty(t *testing.T) {
	work, brk, overtime := AggregateDay(nil, at(23, 0))
	assert.Zero(t, work)
	assert.Zero(t, brk)
	assert.Zero(t, overtime)
}

func TestAggregateTotals_SumsAndFlooredAverage(t *testing.T) {
	daily := []DailySummary{
		{WorkMinutes: 480, BreakMinutes: 60, OvertimeMinutes: 0},
		{WorkMinutes: 500, BreakMinutes: 30, OvertimeMinutes: 20},
		{WorkMinutes: 465, BreakMinutes: 45, OvertimeMinutes: 0},
	}
	totals := AggregateTotals(daily)
	assert.Equal(t, 1445, totals.TotalWorkMinutes)
	assert.Equal(t, 135, totals.TotalBreakMinutes)
	assert.Equal(t, 20, totals.TotalOvertimeMinutes)
	assert.Equal(t, 481, totals.AverageWorkMinutes) // floor(1445/3)
}

func TestAggregateTotals_EmptyInput(t *testing.T) {
	totals := AggregateTotals(nil)
	assert.Zero(t, totals.TotalWorkMinutes)
	assert.Zero(t, totals.AverageWorkMinutes)
}
