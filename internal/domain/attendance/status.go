package attendance

// Status is the derived attendance state of one employee. It is computed
// on demand from the most recent event and never persisted.
type Status string

const (
	StatusNone       Status = "NONE"
	StatusWorking    Status = "WORKING"
	StatusBreak      Status = "BREAK"
	StatusClockedOut Status = "CLOCKED_OUT"
)

// DeriveStatus computes the current status from the chronologically last
// event alone. Earlier events do not influence the result. An empty
// sequence or an unrecognized last event type derives NONE.
func DeriveStatus(events []Event) Status {
	if len(events) == 0 {
		return StatusNone
	}
	switch events[len(events)-1].EventType {
	case EventClockIn, EventBreakEnd:
		return StatusWorking
	case EventBreakStart:
		return StatusBreak
	case EventClockOut:
		return StatusClockedOut
	default:
		return StatusNone
	}
}

var allowedTransitions = map[Status][]EventType{
	StatusNone:       {EventClockIn},
	StatusWorking:    {EventBreakStart, EventClockOut},
	StatusBreak:      {EventBreakEnd},
	StatusClockedOut: {EventClockIn},
}

// ValidateTransition reports whether proposed may be registered while the
// employee is in current status. A rejection carries the current status
// label so callers can surface it as a warning. Only the self-service
// registration path consults this table; administrative edits are trusted
// overrides.
func ValidateTransition(current Status, proposed EventType) error {
	for _, t := range allowedTransitions[current] {
		if t == proposed {
			return nil
		}
	}
	return &InvalidTransitionError{Current: current, Proposed: proposed}
}
