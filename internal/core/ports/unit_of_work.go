package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command, so two
// concurrent updates never share a transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes the fetch, validation and save of one package command to
// a single transaction. Handlers call Begin, defer Rollback and Commit last.
type UnitOfWork interface {
	// Begin opens the transaction. A second call while it is open is a no-op.
	Begin(ctx context.Context) error

	// Commit makes the writes visible to other callers.
	// Returns an error when no transaction is open.
	Commit(ctx context.Context) error

	// Rollback discards every write made since Begin.
	// Returns an error when no transaction is open, e.g. after Commit.
	Rollback(ctx context.Context) error

	// PackageRepository returns a repository that reads and writes inside the open transaction.
	PackageRepository() PackageRepository
}
