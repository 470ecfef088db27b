package reservation

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// BlocksRoom reports whether a reservation in this status occupies its interval.
func (s Status) BlocksRoom() bool {
	return s != StatusCancelled
}

// CanTransitionTo encodes the lifecycle: confirmed -> cancelled | completed.
// Staying confirmed is allowed so that a patch may carry the current status.
func (s Status) CanTransitionTo(next Status) bool {
	if s != StatusConfirmed {
		return false
	}
	return next.IsValid()
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
