// Package ports defines the persistence contracts of the order tracking
// domain. Adapters implement them; use cases depend only on these interfaces.
package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/company"
	"ordertrack/internal/core/domain/model/kernel"
)

// CompanyRepository defines the persistence contract for company aggregates.
type CompanyRepository interface {
	// Add persists a new company. A second company for the same owner is
	// rejected with errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *company.Company) error

	// Update persists changes to an existing company.
	Update(ctx context.Context, aggregate *company.Company) error

	// Get retrieves a company by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*company.Company, error)

	// GetByOwner retrieves the single company of ownerID.
	// Returns errs.ErrObjectNotFound when the owner has not registered one.
	GetByOwner(ctx context.Context, ownerID kernel.UUID) (*company.Company, error)
}
