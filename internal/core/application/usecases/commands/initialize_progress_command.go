package commands

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var ErrInitializeProgressCommandIsNotConstructed = errors.New(
	"InitializeProgressCommand must be created via NewInitializeProgressCommand constructor",
)

// InitializeProgressCommand creates the step snapshot of an order that was
// stored without one.
type InitializeProgressCommand struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewInitializeProgressCommand(ownerID kernel.UUID, orderID kernel.UUID) (InitializeProgressCommand, error) {
	cmd := InitializeProgressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setOwnerID(ownerID), cmd.setOrderID(orderID)); err != nil {
		return InitializeProgressCommand{}, err
	}

	return cmd, nil
}

func (c InitializeProgressCommand) Validate() error {
	return c.guard.Validate(ErrInitializeProgressCommandIsNotConstructed)
}

func (c InitializeProgressCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c InitializeProgressCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *InitializeProgressCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	c.ownerID = ownerID
	return nil
}

func (c *InitializeProgressCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order", err)
	}
	c.orderID = orderID
	return nil
}
