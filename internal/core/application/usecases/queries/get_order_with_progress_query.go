package queries

import (
	"errors"
	"strings"

	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrGetOrderWithProgressQueryIsNotConstructed = errors.New(
		"GetOrderWithProgressQuery must be created via NewGetOrderWithProgressQuery constructor",
	)
)

// GetOrderWithProgressQuery is the customer lookup of an order by its number.
// It needs no authenticated owner.
//
// Example:
//
//	query, err := NewGetOrderWithProgressQuery("PO-2024-001")
//	if err != nil {
//	    return err
//	}
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s: %d%% (%s)\n", resp.CompanyName, resp.Progress.Percentage, resp.Progress.Description())
type GetOrderWithProgressQuery struct {
	orderNumber string

	guard guard.ConstructorGuard
}

// NewGetOrderWithProgressQuery trims the number; a blank number is rejected.
func NewGetOrderWithProgressQuery(orderNumber string) (GetOrderWithProgressQuery, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return GetOrderWithProgressQuery{}, errs.NewValueIsRequiredError("order_number")
	}

	return GetOrderWithProgressQuery{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderWithProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderWithProgressQueryIsNotConstructed)
}

func (q GetOrderWithProgressQuery) OrderNumber() string {
	return q.orderNumber
}

// GetOrderWithProgressQueryResponse is an order with its steps and the
// contact details of the company producing it.
type GetOrderWithProgressQueryResponse struct {
	OrderView

	CompanyName  string
	CompanyEmail string
}
