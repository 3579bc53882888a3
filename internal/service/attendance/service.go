package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/dakoku/timeclock-backend-go/internal/domain/attendance"
	"github.com/dakoku/timeclock-backend-go/internal/pkg/timeutil"
	"github.com/dakoku/timeclock-backend-go/internal/pkg/validator"
)

const (
	recentStatusEvents = 10
	recentShown        = 5

	deviceInfoSelfEdit  = "self-service correction"
	deviceInfoAdminEdit = "administrative correction"
)

type AttendanceServiceImpl struct {
	events        attendance.EventRepository
	offsetMinutes int
	now           func() time.Time
}

func NewAttendanceService(events attendance.EventRepository, offsetMinutes int) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		events:        events,
		offsetMinutes: offsetMinutes,
		now:           time.Now,
	}
}

// FetchStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) FetchStatus(ctx context.Context, employeeID string) (attendance.StatusResponse, error) {
	recent, err := a.events.ListRecent(ctx, employeeID, recentStatusEvents)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to list recent events: %w", err)
	}

	todayKey := timeutil.LocalDateKey(a.now().UTC(), a.offsetMinutes)
	today, err := a.events.ListEvents(ctx, employeeID, todayKey, todayKey)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to list today's events: %w", err)
	}

	shown := recent
	if len(shown) > recentShown {
		shown = shown[len(shown)-recentShown:]
	}

	return attendance.StatusResponse{
		CurrentStatus: string(attendance.DeriveStatus(recent)),
		RecentEvents:  mapEvents(shown),
		TodayEvents:   mapEvents(today),
		Warnings:      []string{},
	}, nil
}

// RegisterEvent implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RegisterEvent(ctx context.Context, employeeID string, req attendance.RegisterEventRequest) (attendance.StatusResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.StatusResponse{}, err
	}

	recent, err := a.events.ListRecent(ctx, employeeID, 1)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to list recent events: %w", err)
	}

	current := attendance.DeriveStatus(recent)
	if err := attendance.ValidateTransition(current, attendance.EventType(req.EventType)); err != nil {
		return attendance.StatusResponse{}, err
	}

	nowUTC := a.now().UTC()
	clientTS := req.ClientTimestamp
	if clientTS == "" {
		clientTS = nowUTC.Format(time.RFC3339)
	}

	ev := attendance.Event{
		EmployeeID:      employeeID,
		EventType:       attendance.EventType(req.EventType),
		Timestamp:       nowUTC,
		ClientTimestamp: clientTS,
		DeviceInfo:      req.DeviceInfo,
	}
	if _, err := a.events.Append(ctx, ev); err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to append event: %w", err)
	}

	return a.FetchStatus(ctx, employeeID)
}

// ListMyEvents implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListMyEvents(ctx context.Context, employeeID, fromKey, toKey string) (attendance.ListEventsResponse, error) {
	if err := validateRange(fromKey, toKey); err != nil {
		return attendance.ListEventsResponse{}, err
	}

	events, err := a.events.ListEvents(ctx, employeeID, fromKey, toKey)
	if err != nil {
		return attendance.ListEventsResponse{}, fmt.Errorf("failed to list events: %w", err)
	}

	return attendance.ListEventsResponse{
		Events: mapEvents(events),
		Count:  len(events),
	}, nil
}

// UpdateMyEvent implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UpdateMyEvent(ctx context.Context, employeeID string, rowNumber int, req attendance.UpdateEventRequest) error {
	ev, err := a.getOwned(ctx, employeeID, rowNumber)
	if err != nil {
		return err
	}
	return a.applyEdit(ctx, ev, req, employeeID, deviceInfoSelfEdit)
}

// DeleteMyEvent implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteMyEvent(ctx context.Context, employeeID string, rowNumber int) error {
	if _, err := a.getOwned(ctx, employeeID, rowNumber); err != nil {
		return err
	}
	if err := a.events.Delete(ctx, rowNumber); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// ListEvents implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListEvents(ctx context.Context, employeeID, fromKey, toKey string) (attendance.ListEventsResponse, error) {
	if err := validateRange(fromKey, toKey); err != nil {
		return attendance.ListEventsResponse{}, err
	}

	events, err := a.events.ListEvents(ctx, employeeID, fromKey, toKey)
	if err != nil {
		return attendance.ListEventsResponse{}, fmt.Errorf("failed to list events: %w", err)
	}

	return attendance.ListEventsResponse{
		Events: mapEvents(events),
		Count:  len(events),
	}, nil
}

// UpdateEvent implements attendance.AttendanceService. Administrative
// edits are trusted overrides: no ownership check, no transition check.
func (a *AttendanceServiceImpl) UpdateEvent(ctx context.Context, editorID string, rowNumber int, req attendance.UpdateEventRequest) error {
	ev, err := a.events.Get(ctx, rowNumber)
	if err != nil {
		return err
	}
	return a.applyEdit(ctx, ev, req, editorID, deviceInfoAdminEdit)
}

// DeleteEvent implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteEvent(ctx context.Context, rowNumber int) error {
	if _, err := a.events.Get(ctx, rowNumber); err != nil {
		return err
	}
	if err := a.events.Delete(ctx, rowNumber); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// getOwned fetches a row and rejects anyone who is not its employee.
func (a *AttendanceServiceImpl) getOwned(ctx context.Context, employeeID string, rowNumber int) (attendance.Event, error) {
	ev, err := a.events.Get(ctx, rowNumber)
	if err != nil {
		return attendance.Event{}, err
	}
	if ev.EmployeeID != employeeID {
		return attendance.Event{}, attendance.ErrNotOwner
	}
	return ev, nil
}

// applyEdit overwrites the row with the corrected type and timestamp,
// stamping the edit metadata. The original values are written on the
// first edit only and kept untouched by later edits.
func (a *AttendanceServiceImpl) applyEdit(ctx context.Context, ev attendance.Event, req attendance.UpdateEventRequest, editorID, deviceInfo string) error {
	if err := req.Validate(); err != nil {
		return err
	}

	ts, err := time.Parse(time.RFC3339, req.Timestamp)
	if err != nil {
		ts, err = time.Parse(time.RFC3339Nano, req.Timestamp)
		if err != nil {
			return fmt.Errorf("failed to parse timestamp: %w", err)
		}
	}

	reason := req.EditReason
	if reason == "" {
		reason = "manual correction"
	}

	updated := ev
	updated.EventType = attendance.EventType(req.EventType)
	updated.Timestamp = ts.UTC()
	updated.ClientTimestamp = req.Timestamp
	updated.DeviceInfo = deviceInfo
	updated.EditedBy = editorID
	updated.EditedAt = a.now().UTC().Format(time.RFC3339)
	updated.EditReason = reason
	if ev.OriginalTimestamp == "" && ev.OriginalEventType == "" {
		updated.OriginalTimestamp = ev.Timestamp.UTC().Format(time.RFC3339)
		updated.OriginalEventType = string(ev.EventType)
	}

	if err := a.events.Update(ctx, ev.RowNumber, updated); err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return nil
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

func mapEvents(events []attendance.Event) []attendance.EventResponse {
	responses := make([]attendance.EventResponse, 0, len(events))
	for _, ev := range events {
		responses = append(responses, attendance.NewEventResponse(ev))
	}
	return responses
}
