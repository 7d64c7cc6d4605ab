package order

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

const MaxNumberLength = 64

// MaxTotalAmount is the largest amount with two decimals and ten integer digits.
const MaxTotalAmount = 9999999999.99

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a customer's purchase.
//
// Order follows these invariants:
//   - Must have a valid identifier and owning company
//   - The order number is non-empty, trimmed and at most MaxNumberLength characters
//   - The product description is required
//   - The amount, when present, is a finite non-negative number
//   - The coarse status is always one of Statuses()
//
// The progress of an order is tracked by separate progress.Step records that
// are created from the company's step list when the order is registered.
type Order struct {
	id                 kernel.UUID
	companyID          kernel.UUID
	number             string
	customer           Customer
	productDescription string
	totalAmount        *float64
	status             Status

	guard guard.ConstructorGuard
}

// NewOrder creates a pending order for companyID.
//
// Example:
//
//	customer, _ := order.NewCustomer("Jane Doe", "jane@example.com", "")
//	o, err := order.NewOrder(kernel.NewUUID(), companyID, "PO-2024-001", customer, "Oak table", nil)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	companyID kernel.UUID,
	number string,
	customer Customer,
	productDescription string,
	totalAmount *float64,
) (*Order, error) {
	return RestoreOrder(id, companyID, number, customer, productDescription, totalAmount, Pending)
}

// RestoreOrder rebuilds a persisted order with its stored status.
func RestoreOrder(
	id kernel.UUID,
	companyID kernel.UUID,
	number string,
	customer Customer,
	productDescription string,
	totalAmount *float64,
	status Status,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCompanyID(companyID),
		o.setNumber(number),
		o.setCustomer(customer),
		o.setProductDescription(productDescription),
		o.setTotalAmount(totalAmount),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CompanyID() kernel.UUID {
	return o.companyID
}

// BelongsTo reports whether the order was placed with companyID.
func (o *Order) BelongsTo(companyID kernel.UUID) bool {
	return o.companyID.IsEqual(companyID)
}

func (o *Order) Number() string {
	return o.number
}

func (o *Order) Customer() Customer {
	return o.customer
}

func (o *Order) ProductDescription() string {
	return o.productDescription
}

// TotalAmount returns the order amount, nil when not provided.
func (o *Order) TotalAmount() *float64 {
	if o.totalAmount == nil {
		return nil
	}
	amount := *o.totalAmount
	return &amount
}

func (o *Order) Status() Status {
	return o.status
}

// ChangeStatus overrides the coarse status. Step progress is not consulted.
func (o *Order) ChangeStatus(status Status) error {
	return o.setStatus(status)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company", err)
	}
	o.companyID = companyID
	return nil
}

func (o *Order) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("order_number")
	}
	if utf8.RuneCountInString(number) > MaxNumberLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"order_number",
			fmt.Errorf("longer than %d characters", MaxNumberLength),
		)
	}
	o.number = number
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	o.customer = customer
	return nil
}

func (o *Order) setProductDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("product_description")
	}
	o.productDescription = description
	return nil
}

func (o *Order) setTotalAmount(amount *float64) error {
	if amount == nil {
		o.totalAmount = nil
		return nil
	}
	if math.IsNaN(*amount) || math.IsInf(*amount, 0) || *amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"total_amount",
			fmt.Errorf("%v is not a non-negative amount", *amount),
		)
	}
	if *amount > MaxTotalAmount {
		return errs.NewValueIsInvalidErrorWithCause(
			"total_amount",
			fmt.Errorf("%v exceeds %.2f", *amount, MaxTotalAmount),
		)
	}
	value := *amount
	o.totalAmount = &value
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
