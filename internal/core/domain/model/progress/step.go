package progress

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

const (
	MaxNameLength  = 255
	MaxNotesLength = 2000
)

var (
	ErrStepIsNotConstructed = errors.New("Step must be created via NewStep or RestoreStep constructor")

	// ErrIllegalTransition is returned when the requested status is not the
	// successor of the current one.
	ErrIllegalTransition = errors.New("illegal step status transition")

	// ErrStatusConflict is returned by storage when the step no longer has the
	// status the transition was computed from.
	ErrStatusConflict = errors.New("step status was changed by another request")
)

// Step is one production step of an order.
type Step struct {
	id          kernel.UUID
	orderID     kernel.UUID
	name        string
	position    int
	status      Status
	notes       string
	startedAt   *time.Time
	completedAt *time.Time

	guard guard.ConstructorGuard
}

// NewStep creates a pending step at the 1-based position within its order.
func NewStep(id kernel.UUID, orderID kernel.UUID, name string, position int) (*Step, error) {
	return RestoreStep(id, orderID, name, position, Pending, "", nil, nil)
}

// RestoreStep rebuilds a persisted step.
func RestoreStep(
	id kernel.UUID,
	orderID kernel.UUID,
	name string,
	position int,
	status Status,
	notes string,
	startedAt *time.Time,
	completedAt *time.Time,
) (*Step, error) {
	s := &Step{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
		s.setName(name),
		s.setPosition(position),
		s.setStatus(status),
		s.SetNotes(notes),
	); err != nil {
		return nil, err
	}

	s.startedAt = copyTime(startedAt)
	s.completedAt = copyTime(completedAt)
	return s, nil
}

func (s *Step) Validate() error {
	if s == nil {
		return ErrStepIsNotConstructed
	}
	return s.guard.Validate(ErrStepIsNotConstructed)
}

func (s *Step) ID() kernel.UUID {
	return s.id
}

func (s *Step) OrderID() kernel.UUID {
	return s.orderID
}

func (s *Step) Name() string {
	return s.name
}

// Position is the 1-based step_order of the step within its order.
func (s *Step) Position() int {
	return s.position
}

func (s *Step) Status() Status {
	return s.status
}

func (s *Step) Notes() string {
	return s.notes
}

func (s *Step) StartedAt() *time.Time {
	return copyTime(s.startedAt)
}

func (s *Step) CompletedAt() *time.Time {
	return copyTime(s.completedAt)
}

// Start moves a pending step to in_progress and stamps the start time.
func (s *Step) Start(now time.Time) error {
	return s.TransitionTo(InProgress, now)
}

// Complete moves an in_progress step to completed and stamps the completion
// time. The start time is left untouched.
func (s *Step) Complete(now time.Time) error {
	return s.TransitionTo(Completed, now)
}

// TransitionTo applies the transition to target if it is the legal successor
// of the current status.
func (s *Step) TransitionTo(target Status, now time.Time) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}
	if !s.status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s.status, target)
	}

	stamp := now.UTC()
	switch target {
	case InProgress:
		s.startedAt = &stamp
	case Completed:
		s.completedAt = &stamp
	}
	s.status = target
	return nil
}

// SetNotes replaces the free-text notes. Empty notes clear them.
func (s *Step) SetNotes(notes string) error {
	notes = strings.TrimSpace(notes)
	if utf8.RuneCountInString(notes) > MaxNotesLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"notes",
			fmt.Errorf("longer than %d characters", MaxNotesLength),
		)
	}
	s.notes = notes
	return nil
}

func (s *Step) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Step) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order", err)
	}
	s.orderID = orderID
	return nil
}

func (s *Step) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("step_name")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"step_name",
			fmt.Errorf("longer than %d characters", MaxNameLength),
		)
	}
	s.name = name
	return nil
}

func (s *Step) setPosition(position int) error {
	if position < 1 {
		return errs.NewValueIsInvalidErrorWithCause("step_order", fmt.Errorf("%d is not a positive position", position))
	}
	s.position = position
	return nil
}

func (s *Step) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
