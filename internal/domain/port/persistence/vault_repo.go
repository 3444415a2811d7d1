package persistence

import (
	"context"

	"github.com/velabs/govlock/internal/domain/entity"
)

// VaultRepository persists the vault aggregates and per-owner share balances.
// The aggregate state is a singleton row; all vault mutations are serialized
// against it because every conversion depends on the shared exchange rate.
type VaultRepository interface {
	// GetState retrieves the vault aggregates, initializing a zeroed genesis
	// state on first access.
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the database is unreachable
	GetState(ctx context.Context) (*entity.Vault, error)

	// SaveState writes the vault aggregates back.
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the database is unreachable
	SaveState(ctx context.Context, vault *entity.Vault) error

	// GetAccount retrieves an owner's share balance.
	//
	// Possible errors:
	// - ErrAccountNotFound: if the owner holds no vault account
	// - ErrDatabaseConnection: if the database is unreachable
	GetAccount(ctx context.Context, owner string) (*entity.VaultAccount, error)

	// UpsertAccount creates or replaces an owner's share balance.
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the database is unreachable
	UpsertAccount(ctx context.Context, account *entity.VaultAccount) error
}
