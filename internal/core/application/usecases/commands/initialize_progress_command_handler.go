package commands

import (
	"context"

	"ordertrack/internal/core/domain/services"
	"ordertrack/internal/pkg/errs"
)

// InitializeProgressCommandHandler snapshots the current company steps into an
// order that has none. Orders that already have steps are refused with
// errs.ErrObjectAlreadyExists.
type InitializeProgressCommandHandler struct {
	uowFactory UoWFactory
	tracker    services.ProgressTracker
}

func NewInitializeProgressCommandHandler(
	uowFactory UoWFactory,
	tracker services.ProgressTracker,
) InitializeProgressCommandHandler {
	return InitializeProgressCommandHandler{
		uowFactory: uowFactory,
		tracker:    tracker,
	}
}

func (h InitializeProgressCommandHandler) Handle(ctx context.Context, cmd InitializeProgressCommand) error {
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

	o, err := uow.OrderRepository().GetForOwner(ctx, cmd.OrderID(), cmd.OwnerID())
	if err != nil {
		return err
	}

	progressRepo := uow.ProgressRepository()
	existing, err := progressRepo.ListByOrder(ctx, o.ID())
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return errs.NewObjectAlreadyExistsError("progress", o.ID())
	}

	c, err := uow.CompanyRepository().GetByOwner(ctx, cmd.OwnerID())
	if err != nil {
		return err
	}

	steps, err := h.tracker.Plan(o, c)
	if err != nil {
		return err
	}

	if err = progressRepo.AddAll(ctx, steps); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
