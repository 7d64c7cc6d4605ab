package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction, e.g. after Commit.
	Rollback(ctx context.Context) error

	// CompanyRepository returns a repository bound to the current transaction.
	CompanyRepository() CompanyRepository

	// OrderRepository returns a repository bound to the current transaction.
	OrderRepository() OrderRepository

	// ProgressRepository returns a repository bound to the current transaction.
	ProgressRepository() ProgressRepository
}
