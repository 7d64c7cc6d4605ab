package commands

import (
	"context"
)

type UpdateStepNotesCommandHandler struct {
	uowFactory ProgressUoWFactory
}

func NewUpdateStepNotesCommandHandler(uowFactory ProgressUoWFactory) UpdateStepNotesCommandHandler {
	return UpdateStepNotesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the notes of a step that belongs to the acting owner.
func (h UpdateStepNotesCommandHandler) Handle(ctx context.Context, cmd UpdateStepNotesCommand) error {
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

	step, err := repo.GetForOwner(ctx, cmd.StepID(), cmd.OwnerID())
	if err != nil {
		return err
	}

	if err = step.SetNotes(cmd.Notes()); err != nil {
		return err
	}

	if err = repo.UpdateNotes(ctx, step); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
