package queries

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrListOrdersWithProgressQueryIsNotConstructed = errors.New(
		"ListOrdersWithProgressQuery must be created via NewListOrdersWithProgressQuery constructor",
	)
)

// ListOrdersWithProgressQuery lists every order of the owner's company,
// newest first, each with its steps.
type ListOrdersWithProgressQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListOrdersWithProgressQuery(ownerID kernel.UUID) (ListOrdersWithProgressQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return ListOrdersWithProgressQuery{}, errs.NewValueIsRequiredErrorWithCause("owner", err)
	}

	return ListOrdersWithProgressQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersWithProgressQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersWithProgressQueryIsNotConstructed)
}

func (q ListOrdersWithProgressQuery) OwnerID() kernel.UUID {
	return q.ownerID
}
