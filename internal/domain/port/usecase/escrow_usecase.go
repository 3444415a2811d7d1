package usecase

import (
	"context"
	"time"
)

// LockInstruction is a validated locking request. Amount is a decimal string;
// Duration is the requested lock length. Signature verification happens
// upstream, so Owner is the already-authenticated actor.
type LockInstruction struct {
	InstructionID string
	Owner         string
	Amount        string
	Duration      time.Duration
}

// IncreaseInstruction tops up an active lock without moving its unlock time.
type IncreaseInstruction struct {
	InstructionID string
	Owner         string
	Amount        string
}

// WithdrawInstruction releases an expired lock's principal.
type WithdrawInstruction struct {
	InstructionID string
	Owner         string
}

// LockState is the externally visible state of a lock plus its voting power
// at the time of the call.
type LockState struct {
	Owner       string
	Amount      string
	UnlockTime  time.Time
	VotingPower string
}

// WithdrawResult reports the principal returned by a withdrawal.
type WithdrawResult struct {
	Owner    string
	Returned string
}

// EscrowUseCase is the public surface of the vote-escrow lock ledger.
type EscrowUseCase interface {
	// CreateLock creates a fresh lock, or tops up and extends an active one.
	CreateLock(ctx context.Context, instr LockInstruction) (*LockState, error)

	// IncreaseAmount adds principal to an active lock, keeping the unlock time.
	IncreaseAmount(ctx context.Context, instr IncreaseInstruction) (*LockState, error)

	// Withdraw releases the full principal of an expired lock.
	Withdraw(ctx context.Context, instr WithdrawInstruction) (*WithdrawResult, error)

	// GetLock returns the owner's current lock state.
	GetLock(ctx context.Context, owner string) (*LockState, error)

	// GetVotingPower derives voting power at an explicit instant.
	GetVotingPower(ctx context.Context, owner string, at time.Time) (string, error)
}
