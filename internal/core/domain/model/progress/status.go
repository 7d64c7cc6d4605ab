package progress

import (
	"fmt"

	"ordertrack/internal/pkg/errs"
)

// Status is the state of a single production step.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of every step.
	Pending

	// InProgress is set by starting a pending step.
	InProgress

	// Completed is terminal.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		InProgress: "in_progress",
		Completed:  "completed",
	}
}

// ParseStatus converts the persisted/wire representation into a Status.
func ParseStatus(s string) (Status, error) {
	for _, status := range []Status{Pending, InProgress, Completed} {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid step status", s))
}

// Next returns the only status reachable from s. Completed and invalid
// statuses have no successor.
func (s Status) Next() (Status, bool) {
	switch s {
	case Pending:
		return InProgress, true
	case InProgress:
		return Completed, true
	default:
		return Unknown, false
	}
}

// CanTransitionTo reports whether target is the legal successor of s.
func (s Status) CanTransitionTo(target Status) bool {
	next, ok := s.Next()
	return ok && next == target
}

func (s Status) Validate() error {
	if s < Pending || s > Completed {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid step status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
