package commands

import (
	"errors"
	"strings"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers a new order under the company of the acting
// owner. The caller chooses the order ID so it can be reported even when the
// progress initialization fails.
//
// Example:
//
//	customer, _ := order.NewCustomer("Jane Doe", "jane@example.com", "")
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), ownerID, "PO-1", customer, "Oak table", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	ownerID            kernel.UUID
	number             string
	customer           order.Customer
	productDescription string
	totalAmount        *float64

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID kernel.UUID,
	ownerID kernel.UUID,
	number string,
	customer order.Customer,
	productDescription string,
	totalAmount *float64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard:       guard.NewConstructorGuard(),
		totalAmount: totalAmount,
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOwnerID(ownerID),
		cmd.setNumber(number),
		cmd.setCustomer(customer),
		cmd.setProductDescription(productDescription),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c CreateOrderCommand) Number() string {
	return c.number
}

func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

func (c CreateOrderCommand) ProductDescription() string {
	return c.productDescription
}

// TotalAmount returns the optional amount; amount rules are enforced by the
// order aggregate.
func (c CreateOrderCommand) TotalAmount() *float64 {
	return c.totalAmount
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	c.ownerID = ownerID
	return nil
}

func (c *CreateOrderCommand) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("order_number")
	}
	c.number = number
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setProductDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("product_description")
	}
	c.productDescription = description
	return nil
}
