package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. A duplicate order number is rejected with
	// errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order by its external order number.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// GetForOwner retrieves an order only if it belongs to the company of
	// ownerID. Orders of other owners are reported as not found.
	GetForOwner(ctx context.Context, id kernel.UUID, ownerID kernel.UUID) (*order.Order, error)
}
