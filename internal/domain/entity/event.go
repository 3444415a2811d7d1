package entity

import (
	"time"

	errs "github.com/velabs/govlock/internal/domain/error"
	coreport "github.com/velabs/govlock/internal/domain/port/core"
)

// EventKind identifies what a journal entry records.
type EventKind string

// Event kinds
const (
	EventLockCreated   EventKind = "lock_created"
	EventLockExtended  EventKind = "lock_extended"
	EventLockIncreased EventKind = "lock_increased"
	EventLockWithdrawn EventKind = "lock_withdrawn"
	EventVaultDeposit  EventKind = "vault_deposit"
	EventVaultWithdraw EventKind = "vault_withdraw"
)

// Event is one entry in the append-only ledger journal. Every mutating
// operation records actor, amounts, and the resulting state, so indexers can
// reconstruct history without re-deriving it from raw state diffs. The
// instruction ID doubles as the idempotency key: a replayed instruction finds
// its prior event and returns the recorded outcome.
type Event struct {
	ID            uint64
	InstructionID string    // Client-supplied, unique per instruction
	Kind          EventKind
	Actor         string // Account that submitted the instruction
	Owner         string // Account whose ledger entry changed
	Receiver      string // Receiver of assets/shares, when distinct from owner
	Amount        int64  // Principal or assets moved, base units
	Shares        int64  // Shares minted or burned (vault events only)
	ResultAmount  int64  // Lock amount or share balance after the operation
	UnlockTime    *time.Time
	CreatedAt     time.Time
}

// NewEvent builds a journal entry with basic validation.
func NewEvent(
	instructionID string,
	kind EventKind,
	actor string,
	owner string,
	timeProvider coreport.TimeProvider,
) (*Event, error) {
	if instructionID == "" {
		return nil, errs.ErrInvalidInstructionID
	}
	if actor == "" || owner == "" {
		return nil, errs.ErrInvalidAccount
	}

	return &Event{
		InstructionID: instructionID,
		Kind:          kind,
		Actor:         actor,
		Owner:         owner,
		CreatedAt:     timeProvider.Now(),
	}, nil
}

// IsLockEvent reports whether the entry belongs to the escrow ledger.
func (e *Event) IsLockEvent() bool {
	switch e.Kind {
	case EventLockCreated, EventLockExtended, EventLockIncreased, EventLockWithdrawn:
		return true
	}
	return false
}

// IsVaultEvent reports whether the entry belongs to the vault ledger.
func (e *Event) IsVaultEvent() bool {
	return e.Kind == EventVaultDeposit || e.Kind == EventVaultWithdraw
}
