// Package commands contains business operations that modify system state.
// Every command follows the same pattern: constructor validation, a unit of
// work per transaction, and persistence through the ports repositories.
package commands

import (
	"context"

	"ordertrack/internal/core/ports"
)

// Unit of Work interfaces narrowed to the repositories each command touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CompanyRepoFactory interface {
		CompanyRepository() ports.CompanyRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ProgressRepoFactory interface {
		ProgressRepository() ports.ProgressRepository
	}

	// CompanyUoW manages transactions for company-only operations.
	CompanyUoW interface {
		TxManager
		CompanyRepoFactory
	}

	CompanyUoWFactory interface {
		Create() CompanyUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ProgressUoW manages transactions for progress step operations.
	ProgressUoW interface {
		TxManager
		ProgressRepoFactory
	}

	ProgressUoWFactory interface {
		Create() ProgressUoW
	}

	// UoW spans all three repositories.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   c, err := uow.CompanyRepository().GetByOwner(ctx, ownerID)
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		CompanyRepoFactory
		OrderRepoFactory
		ProgressRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
