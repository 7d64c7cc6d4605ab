package order

import (
	"fmt"

	"ordertrack/internal/pkg/errs"
)

// Status is the coarse, manually maintained state of an order.
//
// Any valid status may follow any other: the value is an operator's summary of
// the order and is independent of the per-step progress records.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the status every order is created with.
	Pending

	InProgress

	Completed

	// Cancelled marks an order that will not be produced.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// Statuses lists the valid statuses in display order.
func Statuses() []Status {
	return []Status{Pending, InProgress, Completed, Cancelled}
}

// ParseStatus converts the persisted/wire representation into a Status.
func ParseStatus(s string) (Status, error) {
	for _, status := range Statuses() {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
