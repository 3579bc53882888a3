package summary

import (
	"time"

	"github.com/dakoku/timeclock-backend-go/internal/domain/attendance"
)

// StandardWorkMinutes is the fixed 8-hour day used for overtime.
const StandardWorkMinutes = 480

// minutesBetween floors the delta to whole minutes, clamped at zero so an
// out-of-order pair cannot drive a total negative.
func minutesBetween(from, to time.Time) int {
	d := to.Sub(from)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}

// AggregateDay folds one employee's chronologically ordered events into
// worked and break minutes. Work accrues between CLOCK_IN (or BREAK_END)
// and the next BREAK_START or CLOCK_OUT; breaks accrue between BREAK_START
// and BREAK_END. Unmatched BREAK_START/BREAK_END events are ignored. If
// work is still open at the end of the sequence it accrues up to
// evaluatedAt, which makes an in-progress day a live value.
func AggregateDay(events []attendance.Event, evaluatedAt time.Time) (workMinutes, breakMinutes, overtimeMinutes int) {
	var openWorkStart, openBreakStart *time.Time

	for _, ev := range events {
		ts := ev.Timestamp
		switch ev.EventType {
		case attendance.EventClockIn:
			openWorkStart = &ts
			openBreakStart = nil
		case attendance.EventBreakStart:
			if openWorkStart != nil {
				workMinutes += minutesBetween(*openWorkStart, ts)
				openBreakStart = &ts
				openWorkStart = nil
			}
		case attendance.EventBreakEnd:
			if openBreakStart != nil {
				breakMinutes += minutesBetween(*openBreakStart, ts)
				openWorkStart = &ts
				openBreakStart = nil
			}
		case attendance.EventClockOut:
			if openWorkStart != nil {
				workMinutes += minutesBetween(*openWorkStart, ts)
			}
			openWorkStart = nil
			openBreakStart = nil
		}
	}

	if openWorkStart != nil {
		workMinutes += minutesBetween(*openWorkStart, evaluatedAt)
	}

	overtimeMinutes = workMinutes - StandardWorkMinutes
	if overtimeMinutes < 0 {
		overtimeMinutes = 0
	}
	return workMinutes, breakMinutes, overtimeMinutes
}

// AggregateTotals sums daily summaries; the average floors and an empty
// input yields all zeros.
func AggregateTotals(daily []DailySummary) Totals {
	var t Totals
	for _, d := range daily {
		t.TotalWorkMinutes += d.WorkMinutes
		t.TotalBreakMinutes += d.BreakMinutes
		t.TotalOvertimeMinutes += d.OvertimeMinutes
	}
	if n := len(daily); n > 0 {
		t.AverageWorkMinutes = t.TotalWorkMinutes / n
	}
	return t
}
