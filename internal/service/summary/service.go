package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/dakoku/timeclock-backend-go/internal/domain/attendance"
	"github.com/dakoku/timeclock-backend-go/internal/domain/summary"
	"github.com/dakoku/timeclock-backend-go/internal/pkg/timeutil"
	"github.com/dakoku/timeclock-backend-go/internal/pkg/validator"
)

type SummaryServiceImpl struct {
	events        attendance.EventRepository
	offsetMinutes int
	now           func() time.Time
}

func NewSummaryService(events attendance.EventRepository, offsetMinutes int) summary.SummaryService {
	return &SummaryServiceImpl{
		events:        events,
		offsetMinutes: offsetMinutes,
		now:           time.Now,
	}
}

// dayBucket groups one employee's events on one local calendar day.
// Buckets keep first-seen order so output is deterministic.
type dayBucket struct {
	employeeID string
	date       string
	events     []attendance.Event
}

// SummarizeRange implements summary.SummaryService.
func (s *SummaryServiceImpl) SummarizeRange(ctx context.Context, fromKey, toKey, employeeID string) (summary.RangeSummaryResponse, error) {
	if err := validateRange(fromKey, toKey); err != nil {
		return summary.RangeSummaryResponse{}, err
	}

	events, err := s.events.ListEvents(ctx, employeeID, fromKey, toKey)
	if err != nil {
		return summary.RangeSummaryResponse{}, fmt.Errorf("failed to list events: %w", err)
	}

	nowUTC := s.now().UTC()
	buckets := s.bucketByEmployeeAndDay(events)

	daily := make([]summary.DailySummary, 0, len(buckets))
	for _, b := range buckets {
		work, brk, overtime := summary.AggregateDay(b.events, nowUTC)
		daily = append(daily, summary.DailySummary{
			EmployeeID:      b.employeeID,
			Date:            b.date,
			WorkMinutes:     work,
			BreakMinutes:    brk,
			OvertimeMinutes: overtime,
		})
	}

	todayKey := timeutil.LocalDateKey(nowUTC, s.offsetMinutes)

	return summary.RangeSummaryResponse{
		Daily:  daily,
		Totals: summary.AggregateTotals(daily),
		Alerts: detectAlerts(buckets, todayKey),
	}, nil
}

// bucketByEmployeeAndDay groups events by (employee, local date). Events
// arrive ascending by timestamp, so each bucket stays sorted and buckets
// appear in order of their first event.
func (s *SummaryServiceImpl) bucketByEmployeeAndDay(events []attendance.Event) []dayBucket {
	index := make(map[string]int)
	var buckets []dayBucket
	for _, ev := range events {
		date := timeutil.LocalDateKey(ev.Timestamp, s.offsetMinutes)
		key := ev.EmployeeID + "_" + date
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, dayBucket{employeeID: ev.EmployeeID, date: date})
		}
		buckets[i].events = append(buckets[i].events, ev)
	}
	return buckets
}

// validateRange rejects missing or malformed date keys before any store
// access, so a client typo never surfaces as an upstream failure.
func validateRange(fromKey, toKey string) error {
	if fromKey == "" || toKey == "" {
		return attendance.ErrMissingDateRange
	}

	var errs validator.ValidationErrors
	if _, ok := validator.IsValidDate(fromKey); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be a YYYY-MM-DD date",
		})
	}
	if _, ok := validator.IsValidDate(toKey); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be a YYYY-MM-DD date",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// detectAlerts flags today's buckets that clocked in but never out. This
// is the only anomaly rule.
func detectAlerts(buckets []dayBucket, todayKey string) []summary.Alert {
	alerts := []summary.Alert{}
	for _, b := range buckets {
		if b.date != todayKey {
			continue
		}
		var hasClockIn, hasClockOut bool
		for _, ev := range b.events {
			switch ev.EventType {
			case attendance.EventClockIn:
				hasClockIn = true
			case attendance.EventClockOut:
				hasClockOut = true
			}
		}
		if hasClockIn && !hasClockOut {
			alerts = append(alerts, summary.Alert{
				EmployeeID: b.employeeID,
				Date:       b.date,
				Message:    "clock-out not recorded",
			})
		}
	}
	return alerts
}
