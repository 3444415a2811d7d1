package entity

import (
	"math/big"
	"time"

	errs "github.com/velabs/govlock/internal/domain/error"
)

// Lock duration bounds and the boost ceiling for voting power.
const (
	// MinLockDuration is the shortest accepted lock
	MinLockDuration = 7 * 24 * time.Hour
	// MaxLockDuration is the longest accepted lock (four years)
	MaxLockDuration = 4 * 365 * 24 * time.Hour
	// MaxBoost is the voting-power multiplier at a full-length lock
	MaxBoost = 4
)

// System account identifiers on the internal token ledger. Principal moves
// between the owner's account and these when locking, withdrawing, and on
// vault deposits.
const (
	EscrowAccountID = "sys:escrow"
	VaultAccountID  = "sys:vault"
)

// Lock is an account's vote-escrow position: an amount of the principal token
// held until UnlockTime. An account has at most one lock. A withdrawn lock is
// kept with zeroed fields so history stays queryable.
type Lock struct {
	Owner      string    // Account that owns the lock
	Amount     int64     // Locked principal in base units
	UnlockTime time.Time // Zero value when no principal is locked
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewLock creates a fresh lock for owner. The duration window and the amount
// must already satisfy the ledger preconditions.
func NewLock(owner string, amount int64, duration time.Duration, now time.Time) (*Lock, error) {
	if owner == "" {
		return nil, errs.ErrInvalidAccount
	}
	if amount <= 0 {
		return nil, errs.ErrZeroAmount
	}
	if err := ValidateLockDuration(duration); err != nil {
		return nil, err
	}

	return &Lock{
		Owner:      owner,
		Amount:     amount,
		UnlockTime: now.Add(duration),
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// ValidateLockDuration checks the one-week to four-year window.
func ValidateLockDuration(duration time.Duration) error {
	if duration < MinLockDuration || duration > MaxLockDuration {
		return errs.ErrInvalidDuration
	}
	return nil
}

// Active reports whether the lock holds principal that has not yet unlocked.
func (l *Lock) Active(now time.Time) bool {
	return l.Amount > 0 && now.Before(l.UnlockTime)
}

// Expired reports whether the lock holds principal past its unlock time.
func (l *Lock) Expired(now time.Time) bool {
	return l.Amount > 0 && !now.Before(l.UnlockTime)
}

// Relock tops up the lock and pushes the unlock time to now+duration. The
// candidate unlock time must be strictly later than the current one: the
// unlock time is monotonically non-decreasing for the lock's whole lifetime.
func (l *Lock) Relock(addAmount int64, duration time.Duration, now time.Time) error {
	if addAmount <= 0 {
		return errs.ErrZeroAmount
	}
	if err := ValidateLockDuration(duration); err != nil {
		return err
	}

	candidate := now.Add(duration)
	if !candidate.After(l.UnlockTime) {
		return errs.ErrCanOnlyExtend
	}

	newAmount, err := AddAmounts(l.Amount, addAmount)
	if err != nil {
		return err
	}

	l.Amount = newAmount
	l.UnlockTime = candidate
	l.UpdatedAt = now
	return nil
}

// IncreaseAmount adds principal without touching the unlock time, so the
// decay clock keeps running. Only valid while the lock is active.
func (l *Lock) IncreaseAmount(addAmount int64, now time.Time) error {
	if addAmount <= 0 {
		return errs.ErrZeroAmount
	}
	if !l.Active(now) {
		return errs.ErrLockExpired
	}

	newAmount, err := AddAmounts(l.Amount, addAmount)
	if err != nil {
		return err
	}

	l.Amount = newAmount
	l.UpdatedAt = now
	return nil
}

// Withdraw releases the full principal once the unlock time has passed and
// zeroes the lock. Returns the amount released.
func (l *Lock) Withdraw(now time.Time) (int64, error) {
	if l.Amount <= 0 {
		return 0, errs.ErrLockNotFound
	}
	if now.Before(l.UnlockTime) {
		return 0, errs.NewStillLockedError(l.Owner, l.UnlockTime, now)
	}

	released := l.Amount
	l.Amount = 0
	l.UnlockTime = time.Time{}
	l.UpdatedAt = now
	return released, nil
}

// VotingPower derives the time-decaying voting power at the given instant:
//
//	amount * (unlockTime - now) * MaxBoost / MaxLockDuration
//
// Power decays linearly to zero as now approaches the unlock time and is
// never cached; a stale value would misrepresent the remaining commitment.
// The intermediate product overflows int64 for large balances, so the math
// runs through big.Int.
func (l *Lock) VotingPower(now time.Time) *big.Int {
	if l.Amount <= 0 || !now.Before(l.UnlockTime) {
		return big.NewInt(0)
	}

	remaining := l.UnlockTime.Sub(now)
	if remaining > MaxLockDuration {
		remaining = MaxLockDuration
	}

	power := new(big.Int).SetInt64(l.Amount)
	power.Mul(power, big.NewInt(int64(remaining/time.Second)))
	power.Mul(power, big.NewInt(MaxBoost))
	power.Quo(power, big.NewInt(int64(MaxLockDuration/time.Second)))
	return power
}
