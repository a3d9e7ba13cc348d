package booking

import "fmt"

// Status represents the lifecycle state of a booking.
type Status string

const (
	StatusPending   Status = "pending"
	StatusOnTheWay  Status = "on_the_way"
	StatusCompleted Status = "completed"
)

// validStatuses is the closed set of recognized statuses. Transitions are
// deliberately unrestricted: the dispatcher corrects mistakes by moving a
// booking back, so any status is reachable from any other.
var validStatuses = map[Status]struct{}{
	StatusPending:   {},
	StatusOnTheWay:  {},
	StatusCompleted: {},
}

// IsValid returns true if the status is a recognized booking status.
func (s Status) IsValid() bool {
	_, exists := validStatuses[s]
	return exists
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a string to a Status, returning an error if invalid.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}
