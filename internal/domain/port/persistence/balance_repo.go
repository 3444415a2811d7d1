package persistence

import (
	"context"
)

// BalanceRepository is the token-transfer capability the ledgers depend on.
// Balances live on an internal double-entry token ledger; the escrow and
// vault system accounts hold principal and underlying assets respectively.
type BalanceRepository interface {
	// GetBalance returns an account's token balance in base units.
	//
	// Possible errors:
	// - ErrAccountNotFound: if the account doesn't exist
	// - ErrDatabaseConnection: if the database is unreachable
	GetBalance(ctx context.Context, account string) (int64, error)

	// Transfer moves amount base units from one account to another as a
	// single double-entry mutation.
	//
	// Possible errors:
	// - ErrAccountNotFound: if the source account doesn't exist
	// - ErrInsufficientBalance: if the source cannot cover the amount
	// - ErrDatabaseConnection: if the database is unreachable
	Transfer(ctx context.Context, from, to string, amount int64) error

	// Credit mints amount base units onto an account, creating it if needed.
	// Used for bootstrap funding in development environments.
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the database is unreachable
	Credit(ctx context.Context, account string, amount int64) error
}
