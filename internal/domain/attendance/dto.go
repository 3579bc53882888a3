package attendance

import (
	"time"

	"github.com/dakoku/timeclock-backend-go/internal/pkg/validator"
)

var eventTypeNames = []string{
	string(EventClockIn),
	string(EventClockOut),
	string(EventBreakStart),
	string(EventBreakEnd),
}

type RegisterEventRequest struct {
	EventType       string `json:"event_type"`
	ClientTimestamp string `json:"client_ts,omitempty"`
	DeviceInfo      string `json:"device_info,omitempty"`
}

func (r *RegisterEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EventType) {
		errs = append(errs, validator.ValidationError{
			Field:   "event_type",
			Message: "event_type is required",
		})
	} else if !validator.IsInSlice(r.EventType, eventTypeNames) {
		errs = append(errs, validator.ValidationError{
			Field:   "event_type",
			Message: "event_type must be one of CLOCK_IN, CLOCK_OUT, BREAK_START, BREAK_END",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEventRequest corrects a stored event. Timestamp replaces the
// authoritative instant; the server stamps the edit metadata.
type UpdateEventRequest struct {
	EventType  string `json:"event_type"`
	Timestamp  string `json:"timestamp"`
	EditReason string `json:"edit_reason,omitempty"`
}

func (r *UpdateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EventType) {
		errs = append(errs, validator.ValidationError{
			Field:   "event_type",
			Message: "event_type is required",
		})
	} else if !validator.IsInSlice(r.EventType, eventTypeNames) {
		errs = append(errs, validator.ValidationError{
			Field:   "event_type",
			Message: "event_type must be one of CLOCK_IN, CLOCK_OUT, BREAK_START, BREAK_END",
		})
	}

	if validator.IsEmpty(r.Timestamp) {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp is required",
		})
	} else if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be an ISO8601 datetime",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EventResponse struct {
	RowNumber         int    `json:"row_number"`
	EmployeeID        string `json:"employee_id"`
	EventType         string `json:"event_type"`
	Timestamp         string `json:"timestamp"`
	ClientTimestamp   string `json:"client_ts,omitempty"`
	DeviceInfo        string `json:"device_info,omitempty"`
	EditedBy          string `json:"edited_by,omitempty"`
	EditedAt          string `json:"edited_at,omitempty"`
	EditReason        string `json:"edit_reason,omitempty"`
	OriginalTimestamp string `json:"original_timestamp,omitempty"`
	OriginalEventType string `json:"original_event_type,omitempty"`
	IsEdited          bool   `json:"is_edited"`
}

// NewEventResponse maps an Event entity to its response form.
func NewEventResponse(ev Event) EventResponse {
	return EventResponse{
		RowNumber:         ev.RowNumber,
		EmployeeID:        ev.EmployeeID,
		EventType:         string(ev.EventType),
		Timestamp:         ev.Timestamp.UTC().Format(time.RFC3339),
		ClientTimestamp:   ev.ClientTimestamp,
		DeviceInfo:        ev.DeviceInfo,
		EditedBy:          ev.EditedBy,
		EditedAt:          ev.EditedAt,
		EditReason:        ev.EditReason,
		OriginalTimestamp: ev.OriginalTimestamp,
		OriginalEventType: ev.OriginalEventType,
		IsEdited:          ev.IsEdited(),
	}
}

type StatusResponse struct {
	CurrentStatus string          `json:"current_status"`
	RecentEvents  []EventResponse `json:"recent_events"`
	TodayEvents   []EventResponse `json:"today_events"`
	Warnings      []string        `json:"warnings"`
}

type ListEventsResponse struct {
	Events []EventResponse `json:"events"`
	Count  int             `json:"count"`
}
