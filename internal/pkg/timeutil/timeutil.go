package timeutil

import (
	"fmt"
	"time"
)

const dateKeyLayout = "2006-01-02"

// Zone returns the fixed-offset location used for calendar-day math.
func Zone(offsetMinutes int) *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", offsetMinutes/60), offsetMinutes*60)
}

// LocalDateKey returns the "YYYY-MM-DD" calendar date of t in the fixed
// local offset.
func LocalDateKey(t time.Time, offsetMinutes int) string {
	return t.In(Zone(offsetMinutes)).Format(dateKeyLayout)
}

// LocalDayBounds returns the inclusive instant range covering the local
// calendar day dateKey: [local 00:00:00.000, local 23:59:59.999] as UTC
// instants. Both endpoints belong to the range.
func LocalDayBounds(dateKey string, offsetMinutes int) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation(dateKeyLayout, dateKey, Zone(offsetMinutes))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", dateKey, err)
	}
	start := day.UTC()
	end := day.Add(24*time.Hour - time.Millisecond).UTC()
	return start, end, nil
}
