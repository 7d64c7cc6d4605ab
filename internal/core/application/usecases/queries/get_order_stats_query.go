package queries

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrGetOrderStatsQueryIsNotConstructed = errors.New(
		"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
	)
)

// GetOrderStatsQuery counts the orders of the owner's company by coarse
// status.
type GetOrderStatsQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderStatsQuery(ownerID kernel.UUID) (GetOrderStatsQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetOrderStatsQuery{}, errs.NewValueIsRequiredErrorWithCause("owner", err)
	}

	return GetOrderStatsQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

func (q GetOrderStatsQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

type GetOrderStatsQueryResponse struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int
	Cancelled  int
}
