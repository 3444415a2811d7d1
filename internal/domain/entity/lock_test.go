package entity

import (
	"math"
	"testing"
	"time"

	errs "github.com/velabs/govlock/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

var lockTestNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestNewLock(t *testing.T) {
	t.Run("Valid lock", func(t *testing.T) {
		lock, err := NewLock("alice", 100000000, MinLockDuration, lockTestNow)
		assert.NoError(t, err)
		assert.Equal(t, "alice", lock.Owner)
		assert.Equal(t, int64(100000000), lock.Amount)
		assert.Equal(t, lockTestNow.Add(MinLockDuration), lock.UnlockTime)
		assert.Equal(t, lockTestNow, lock.CreatedAt)
	})

	t.Run("Empty owner", func(t *testing.T) {
		_, err := NewLock("", 100, MinLockDuration, lockTestNow)
		assert.ErrorIs(t, err, errs.ErrInvalidAccount)
	})

	t.Run("Zero amount", func(t *testing.T) {
		_, err := NewLock("alice", 0, MinLockDuration, lockTestNow)
		assert.ErrorIs(t, err, errs.ErrZeroAmount)
	})

	t.Run("Duration below minimum", func(t *testing.T) {
		_, err := NewLock("alice", 100, MinLockDuration-time.Second, lockTestNow)
		assert.ErrorIs(t, err, errs.ErrInvalidDuration)
	})

	t.Run("Duration above maximum", func(t *testing.T) {
		_, err := NewLock("alice", 100, MaxLockDuration+time.Second, lockTestNow)
		assert.ErrorIs(t, err, errs.ErrInvalidDuration)
	})
}

func TestValidateLockDuration(t *testing.T) {
	testCases := []struct {
		name     string
		duration time.Duration
		valid    bool
	}{
		{"Exactly one week", MinLockDuration, true},
		{"Exactly four years", MaxLockDuration, true},
		{"One day", 24 * time.Hour, false},
		{"One second short of a week", MinLockDuration - time.Second, false},
		{"One second beyond four years", MaxLockDuration + time.Second, false},
		{"One year", 365 * 24 * time.Hour, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateLockDuration(tc.duration)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, errs.ErrInvalidDuration)
			}
		})
	}
}

func TestLockActiveExpired(t *testing.T) {
	lock, err := NewLock("alice", 100000000, MinLockDuration, lockTestNow)
	assert.NoError(t, err)

	assert.True(t, lock.Active(lockTestNow))
	assert.False(t, lock.Expired(lockTestNow))

	atUnlock := lock.UnlockTime
	assert.False(t, lock.Active(atUnlock))
	assert.True(t, lock.Expired(atUnlock))

	// A withdrawn (zeroed) lock is neither active nor expired
	lock.Amount = 0
	assert.False(t, lock.Active(lockTestNow))
	assert.False(t, lock.Expired(atUnlock))
}

func TestLockRelock(t *testing.T) {
	t.Run("Extends and tops up", func(t *testing.T) {
		lock, _ := NewLock("alice", 100000000, MinLockDuration, lockTestNow)

		later := lockTestNow.Add(time.Hour)
		err := lock.Relock(50000000, 2*MinLockDuration, later)
		assert.NoError(t, err)
		assert.Equal(t, int64(150000000), lock.Amount)
		assert.Equal(t, later.Add(2*MinLockDuration), lock.UnlockTime)
	})

	t.Run("Unlock time may only move later", func(t *testing.T) {
		lock, _ := NewLock("alice", 100000000, MaxLockDuration, lockTestNow)

		// One more week from the same instant lands well before the
		// current unlock time
		err := lock.Relock(50000000, MinLockDuration, lockTestNow)
		assert.ErrorIs(t, err, errs.ErrCanOnlyExtend)
		assert.Equal(t, int64(100000000), lock.Amount)
	})

	t.Run("Identical unlock time is rejected", func(t *testing.T) {
		lock, _ := NewLock("alice", 100000000, MinLockDuration, lockTestNow)

		err := lock.Relock(50000000, MinLockDuration, lockTestNow)
		assert.ErrorIs(t, err, errs.ErrCanOnlyExtend)
	})

	t.Run("Zero amount", func(t *testing.T) {
		lock, _ := NewLock("alice", 100000000, MinLockDuration, lockTestNow)

		err := lock.Relock(0, 2*MinLockDuration, lockTestNow)
		assert.ErrorIs(t, err, errs.ErrZeroAmount)
	})

	t.Run("Overflowing top-up", func(t *testing.T) {
		lock, _ := NewLock("alice", math.MaxInt64, MinLockDuration, lockTestNow)

		err := lock.Relock(1, 2*MinLockDuration, lockTestNow)
		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
	})
}

func TestLockIncreaseAmount(t *testing.T) {
	t.Run("Keeps the unlock time", func(t *testing.T) {
		lock, _ := NewLock("alice", 100000000, MinLockDuration, lockTestNow)
		unlock := lock.UnlockTime

		err := lock.IncreaseAmount(50000000, lockTestNow.Add(time.Hour))
		assert.NoError(t, err)
		assert.Equal(t, int64(150000000), lock.Amount)
		assert.Equal(t, unlock, lock.UnlockTime)
	})

	t.Run("Expired lock", func(t *testing.T) {
		lock, _ := NewLock("alice", 100000000, MinLockDuration, lockTestNow)

		err := lock.IncreaseAmount(50000000, lock.UnlockTime)
		assert.ErrorIs(t, err, errs.ErrLockExpired)
	})

	t.Run("Withdrawn lock", func(t *testing.T) {
		lock := &Lock{Owner: "alice"}

		err := lock.IncreaseAmount(50000000, lockTestNow)
		assert.ErrorIs(t, err, errs.ErrLockExpired)
	})

	t.Run("Zero amount", func(t *testing.T) {
		lock, _ := NewLock("alice", 100000000, MinLockDuration, lockTestNow)

		err := lock.IncreaseAmount(0, lockTestNow)
		assert.ErrorIs(t, err, errs.ErrZeroAmount)
	})
}

func TestLockWithdraw(t *testing.T) {
	t.Run("After expiry", func(t *testing.T) {
		lock, _ := NewLock("alice", 100000000, MinLockDuration, lockTestNow)

		released, err := lock.Withdraw(lock.UnlockTime)
		assert.NoError(t, err)
		assert.Equal(t, int64(100000000), released)
		assert.Equal(t, int64(0), lock.Amount)
		assert.True(t, lock.UnlockTime.IsZero())
	})

	t.Run("Before expiry", func(t *testing.T) {
		lock, _ := NewLock("alice", 100000000, MinLockDuration, lockTestNow)

		_, err := lock.Withdraw(lockTestNow)
		assert.ErrorIs(t, err, errs.ErrStillLocked)
		assert.Equal(t, int64(100000000), lock.Amount)
	})

	t.Run("Nothing locked", func(t *testing.T) {
		lock := &Lock{Owner: "alice"}

		_, err := lock.Withdraw(lockTestNow)
		assert.ErrorIs(t, err, errs.ErrLockNotFound)
	})
}

func TestLockVotingPower(t *testing.T) {
	// 10000 tokens in base units
	amount := int64(10000 * 100000000)

	t.Run("Full-length lock gets maximum boost", func(t *testing.T) {
		lock, _ := NewLock("alice", amount, MaxLockDuration, lockTestNow)

		power := lock.VotingPower(lockTestNow)
		assert.Equal(t, "4000000000000", power.String())
	})

	t.Run("Power decays linearly", func(t *testing.T) {
		lock, _ := NewLock("alice", amount, MaxLockDuration, lockTestNow)

		halfway := lockTestNow.Add(MaxLockDuration / 2)
		power := lock.VotingPower(halfway)
		assert.Equal(t, "2000000000000", power.String())
	})

	t.Run("Minimum lock gets proportionally small power", func(t *testing.T) {
		lock, _ := NewLock("alice", 100000000, MinLockDuration, lockTestNow)

		// 1e8 * 604800 * 4 / 126144000, floor division
		power := lock.VotingPower(lockTestNow)
		assert.Equal(t, "1917808", power.String())
	})

	t.Run("Zero at the unlock time", func(t *testing.T) {
		lock, _ := NewLock("alice", amount, MinLockDuration, lockTestNow)

		assert.Equal(t, "0", lock.VotingPower(lock.UnlockTime).String())
		assert.Equal(t, "0", lock.VotingPower(lock.UnlockTime.Add(time.Hour)).String())
	})

	t.Run("Zero for a withdrawn lock", func(t *testing.T) {
		lock := &Lock{Owner: "alice"}

		assert.Equal(t, "0", lock.VotingPower(lockTestNow).String())
	})

	t.Run("Huge balances do not overflow", func(t *testing.T) {
		lock, _ := NewLock("alice", math.MaxInt64, MaxLockDuration, lockTestNow)

		power := lock.VotingPower(lockTestNow)
		// 4 * MaxInt64, representable only through big.Int
		assert.Equal(t, "36893488147419103228", power.String())
		assert.Positive(t, power.Sign())
	})
}
