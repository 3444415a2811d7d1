package persistence

import (
	"context"
)

// UnitOfWork coordinates one atomic ledger mutation: every repository
// obtained from the transactional context sees the same consistent snapshot,
// and either all writes commit or none do.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// LockRepository returns a lock repository bound to the transaction
	LockRepository(ctx context.Context) LockRepository

	// VaultRepository returns a vault repository bound to the transaction
	VaultRepository(ctx context.Context) VaultRepository

	// BalanceRepository returns a balance repository bound to the transaction
	BalanceRepository(ctx context.Context) BalanceRepository

	// EventRepository returns an event repository bound to the transaction
	EventRepository(ctx context.Context) EventRepository
}
