package persistence

import (
	"context"

	"github.com/velabs/govlock/internal/domain/entity"
)

// LockRepository persists vote-escrow locks, one row per owner.
type LockRepository interface {
	// GetByOwner retrieves the lock record for an owner.
	//
	// Possible errors:
	// - ErrLockNotFound: if the owner has never locked
	// - ErrDatabaseConnection: if the database is unreachable
	GetByOwner(ctx context.Context, owner string) (*entity.Lock, error)

	// Upsert creates or replaces the owner's lock record. Withdrawn locks are
	// stored with zeroed amount and unlock time rather than deleted.
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the database is unreachable
	Upsert(ctx context.Context, lock *entity.Lock) error
}
