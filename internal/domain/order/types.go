package order

type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusMatched   Status = "matched"
	StatusPurchased Status = "purchased"
	StatusInTransit Status = "in_transit"
	StatusDelivered Status = "delivered"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusDisputed  Status = "disputed"
)

// transitions is the complete status graph. Statuses missing as keys are terminal.
var transitions = map[Status][]Status{
	StatusDraft:     {StatusActive, StatusCancelled},
	StatusActive:    {StatusMatched, StatusCancelled},
	StatusMatched:   {StatusPurchased, StatusCancelled},
	StatusPurchased: {StatusInTransit, StatusCancelled},
	StatusInTransit: {StatusDelivered, StatusDisputed},
	StatusDelivered: {StatusCompleted, StatusDisputed},
	StatusDisputed:  {StatusCompleted, StatusCancelled},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusMatched, StatusPurchased, StatusInTransit,
		StatusDelivered, StatusCompleted, StatusCancelled, StatusDisputed:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AllowedNext returns a copy of the outgoing edges of s.
func (s Status) AllowedNext() []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// IsMatchedPhase reports whether an order in s must have a matched traveler.
func (s Status) IsMatchedPhase() bool {
	switch s {
	case StatusMatched, StatusPurchased, StatusInTransit, StatusDelivered, StatusCompleted, StatusDisputed:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
