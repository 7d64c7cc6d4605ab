package commands

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var ErrUpdateStepNotesCommandIsNotConstructed = errors.New(
	"UpdateStepNotesCommand must be created via NewUpdateStepNotesCommand constructor",
)

// UpdateStepNotesCommand replaces the free-text notes of a progress step.
// Empty notes clear them.
type UpdateStepNotesCommand struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID
	stepID  kernel.UUID
	notes   string

	guard guard.ConstructorGuard
}

func NewUpdateStepNotesCommand(ownerID kernel.UUID, stepID kernel.UUID, notes string) (UpdateStepNotesCommand, error) {
	cmd := UpdateStepNotesCommand{
		guard: guard.NewConstructorGuard(),
		notes: notes,
	}

	if err := errors.Join(cmd.setOwnerID(ownerID), cmd.setStepID(stepID)); err != nil {
		return UpdateStepNotesCommand{}, err
	}

	return cmd, nil
}

func (c UpdateStepNotesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStepNotesCommandIsNotConstructed)
}

func (c UpdateStepNotesCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c UpdateStepNotesCommand) StepID() kernel.UUID {
	return c.stepID
}

func (c UpdateStepNotesCommand) Notes() string {
	return c.notes
}

func (c *UpdateStepNotesCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	c.ownerID = ownerID
	return nil
}

func (c *UpdateStepNotesCommand) setStepID(stepID kernel.UUID) error {
	if err := stepID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("step", err)
	}
	c.stepID = stepID
	return nil
}
