package commands

import (
	"context"

	"ordertrack/internal/core/domain/model/company"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/services"
	"ordertrack/internal/pkg/errs"
)

// CreateOrderCommandHandler creates an order and the snapshot of its company's
// process steps.
//
// The order and its steps are written in two transactions. When the order is
// stored but the steps are not, Handle returns *errs.PartialFailureError with
// the order ID; InitializeProgressCommandHandler can finish the job later.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	var partial *errs.PartialFailureError
//	switch {
//	case errors.As(err, &partial):
//	    log.Printf("order %v created without progress", partial.ID)
//	case errors.Is(err, errs.ErrObjectAlreadyExists):
//	    log.Println("order number is taken")
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	tracker    services.ProgressTracker
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory, tracker services.ProgressTracker) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		tracker:    tracker,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, o, err := h.createOrder(ctx, cmd)
	if err != nil {
		return err
	}

	if err = h.initializeProgress(ctx, o, c); err != nil {
		return errs.NewPartialFailureErrorWithCause("progress initialization", o.ID(), err)
	}

	return nil
}

func (h CreateOrderCommandHandler) createOrder(
	ctx context.Context,
	cmd CreateOrderCommand,
) (*company.Company, *order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.CompanyRepository().GetByOwner(ctx, cmd.OwnerID())
	if err != nil {
		return nil, nil, err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		c.ID(),
		cmd.Number(),
		cmd.Customer(),
		cmd.ProductDescription(),
		cmd.TotalAmount(),
	)
	if err != nil {
		return nil, nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return c, o, nil
}

func (h CreateOrderCommandHandler) initializeProgress(ctx context.Context, o *order.Order, c *company.Company) error {
	steps, err := h.tracker.Plan(o, c)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProgressRepository().AddAll(ctx, steps); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
