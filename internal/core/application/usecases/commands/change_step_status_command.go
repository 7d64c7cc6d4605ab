package commands

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/progress"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var ErrChangeStepStatusCommandIsNotConstructed = errors.New(
	"ChangeStepStatusCommand must be created via NewChangeStepStatusCommand constructor",
)

// ChangeStepStatusCommand moves a progress step to its next status.
//
// Example:
//
//	cmd, err := NewChangeStepStatusCommand(ownerID, stepID, progress.InProgress)
type ChangeStepStatusCommand struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID
	stepID  kernel.UUID
	status  progress.Status

	guard guard.ConstructorGuard
}

func NewChangeStepStatusCommand(
	ownerID kernel.UUID,
	stepID kernel.UUID,
	status progress.Status,
) (ChangeStepStatusCommand, error) {
	cmd := ChangeStepStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setStepID(stepID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeStepStatusCommand{}, err
	}

	return cmd, nil
}

func (c ChangeStepStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeStepStatusCommandIsNotConstructed)
}

func (c ChangeStepStatusCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c ChangeStepStatusCommand) StepID() kernel.UUID {
	return c.stepID
}

func (c ChangeStepStatusCommand) Status() progress.Status {
	return c.status
}

func (c *ChangeStepStatusCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	c.ownerID = ownerID
	return nil
}

func (c *ChangeStepStatusCommand) setStepID(stepID kernel.UUID) error {
	if err := stepID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("step", err)
	}
	c.stepID = stepID
	return nil
}

func (c *ChangeStepStatusCommand) setStatus(status progress.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == progress.Pending {
		return errs.NewValueIsInvalidErrorWithCause("status", errors.New("a step cannot be moved back to pending"))
	}
	c.status = status
	return nil
}
