package persistence

import (
	"context"
	"time"
)

// AccountLockRepository provides short-lived pessimistic locks keyed by
// account (or the vault singleton key) so ledger mutations stay mutually
// exclusive across service instances, not just within one process. Locks
// carry an expiry so a crashed holder cannot wedge an account forever.
type AccountLockRepository interface {
	// AcquireLock attempts to take the lock for a key; the lock expires after
	// the given duration.
	//
	// Possible errors:
	// - ErrAccountLocked: if another operation holds an unexpired lock
	// - ErrDatabaseConnection: if the database is unreachable
	AcquireLock(ctx context.Context, key string, duration time.Duration) error

	// ReleaseLock releases a previously acquired lock. Releasing an absent or
	// expired lock is not an error.
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the database is unreachable
	ReleaseLock(ctx context.Context, key string) error

	// CleanupExpired removes expired lock rows.
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the database is unreachable
	CleanupExpired(ctx context.Context) error
}
