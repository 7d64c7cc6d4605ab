package queries

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrGetCompanyQueryIsNotConstructed = errors.New(
		"GetCompanyQuery must be created via NewGetCompanyQuery constructor",
	)
)

// GetCompanyQuery reads the company settings of an owner.
type GetCompanyQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCompanyQuery(ownerID kernel.UUID) (GetCompanyQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetCompanyQuery{}, errs.NewValueIsRequiredErrorWithCause("owner", err)
	}

	return GetCompanyQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetCompanyQuery) Validate() error {
	return q.guard.Validate(ErrGetCompanyQueryIsNotConstructed)
}

func (q GetCompanyQuery) OwnerID() kernel.UUID {
	return q.ownerID
}
