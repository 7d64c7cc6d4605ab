package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/progress"
)

// ProgressRepository defines the persistence contract for progress steps.
type ProgressRepository interface {
	// AddAll persists the step snapshot of one order in a single statement.
	AddAll(ctx context.Context, steps []*progress.Step) error

	// Get retrieves a step by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*progress.Step, error)

	// GetForOwner retrieves a step only if its order belongs to the company of
	// ownerID. Steps of other owners are reported as not found.
	GetForOwner(ctx context.Context, id kernel.UUID, ownerID kernel.UUID) (*progress.Step, error)

	// ListByOrder returns the steps of an order ordered by position.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*progress.Step, error)

	// UpdateStatus persists the status and timestamps of step, provided the
	// stored status is still from. Otherwise progress.ErrStatusConflict is returned.
	UpdateStatus(ctx context.Context, step *progress.Step, from progress.Status) error

	// UpdateNotes persists the notes of step.
	UpdateNotes(ctx context.Context, step *progress.Step) error
}
