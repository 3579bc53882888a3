package attendance

import (
	"time"
)

type EventType string

const (
	EventClockIn    EventType = "CLOCK_IN"
	EventClockOut   EventType = "CLOCK_OUT"
	EventBreakStart EventType = "BREAK_START"
	EventBreakEnd   EventType = "BREAK_END"
)

// Valid reports whether t is one of the four recognized event types.
func (t EventType) Valid() bool {
	switch t {
	case EventClockIn, EventClockOut, EventBreakStart, EventBreakEnd:
		return true
	}
	return false
}

// Event is one attendance log row. Timestamp is the authoritative
// server-assigned instant (UTC); ClientTimestamp and DeviceInfo are
// informational only and kept as the raw strings the client sent.
type Event struct {
	RowNumber       int
	EmployeeID      string
	EventType       EventType
	Timestamp       time.Time
	ClientTimestamp string
	DeviceInfo      string

	// Edit metadata. EditedAt and the Original* fields are stored as raw
	// strings so a half-filled audit trail never breaks listing.
	EditedBy          string
	EditedAt          string
	EditReason        string
	OriginalTimestamp string
	OriginalEventType string
}

// IsEdited reports whether the event has been corrected after the fact.
func (e Event) IsEdited() bool {
	return e.EditedBy != "" && e.EditedAt != ""
}
