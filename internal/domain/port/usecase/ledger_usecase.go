package usecase

import (
	"context"
	"time"
)

// BalanceView is the externally visible token balance of an account.
type BalanceView struct {
	Account string
	Balance string
}

// HistoryEntry is one journal entry rendered for external consumers.
// Amounts are decimal strings; UnlockTime is set for escrow entries only.
type HistoryEntry struct {
	ID            uint64
	InstructionID string
	Kind          string
	Actor         string
	Owner         string
	Receiver      string
	Amount        string
	Shares        string
	ResultAmount  string
	UnlockTime    *time.Time
	CreatedAt     time.Time
}

// LedgerUseCase is the read surface over the shared token ledger and the
// journal both sub-ledgers write to.
type LedgerUseCase interface {
	// GetBalance returns an account's token balance.
	GetBalance(ctx context.Context, account string) (*BalanceView, error)

	// GetHistory returns an owner's journal entries, newest first. A
	// non-positive limit selects the configured default.
	GetHistory(ctx context.Context, owner string, limit int) ([]*HistoryEntry, error)
}
