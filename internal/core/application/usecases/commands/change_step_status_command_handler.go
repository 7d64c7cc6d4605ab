package commands

import (
	"context"
	"time"

	"ordertrack/internal/core/ports"
)

// ChangeStepStatusCommandHandler applies one step transition of the acting
// owner's order.
//
// The transition is persisted only if nobody changed the step since it was
// read; otherwise progress.ErrStatusConflict is returned. The coarse order
// status is not touched.
type ChangeStepStatusCommandHandler struct {
	uowFactory ProgressUoWFactory
	now        func() time.Time
}

func NewChangeStepStatusCommandHandler(uowFactory ProgressUoWFactory, now func() time.Time) ChangeStepStatusCommandHandler {
	return ChangeStepStatusCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

func (h ChangeStepStatusCommandHandler) Handle(ctx context.Context, cmd ChangeStepStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProgressRepository()
	if err := h.transition(ctx, repo, cmd); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h ChangeStepStatusCommandHandler) transition(
	ctx context.Context,
	repo ports.ProgressRepository,
	cmd ChangeStepStatusCommand,
) error {
	step, err := repo.GetForOwner(ctx, cmd.StepID(), cmd.OwnerID())
	if err != nil {
		return err
	}

	from := step.Status()
	if err = step.TransitionTo(cmd.Status(), h.now()); err != nil {
		return err
	}

	return repo.UpdateStatus(ctx, step, from)
}
