package error

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		err      error
		expected int
	}{
		{ErrZeroAmount, CodeZeroAmount},
		{ErrInvalidAmount, CodeInvalidAmount},
		{ErrNegativeAmount, CodeInvalidAmount},
		{ErrInvalidDuration, CodeInvalidDuration},
		{ErrCanOnlyExtend, CodeCanOnlyExtend},
		{ErrLockExpired, CodeLockExpired},
		{ErrStillLocked, CodeStillLocked},
		{ErrZeroAssets, CodeZeroAssets},
		{ErrInsufficientShares, CodeInsufficientShares},
		{ErrInsufficientBalance, CodeInsufficientBalance},
		{ErrAmountOverflow, CodeAmountOverflow},
		{ErrInvalidAccount, CodeInvalidAccount},
		{ErrInvalidInstructionID, CodeInvalidAccount},
		{ErrDuplicateInstruction, CodeDuplicateInstruction},
		{ErrAccountNotFound, CodeAccountNotFound},
		{ErrLockNotFound, CodeLockNotFound},
		{ErrAccountLocked, CodeAccountLocked},
		{ErrInternalServer, CodeInternalServer},
		{errors.New("anything else"), CodeInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}

	t.Run("Wrapped errors keep their code", func(t *testing.T) {
		wrapped := fmt.Errorf("context: %w", ErrStillLocked)
		assert.Equal(t, CodeStillLocked, ErrorCode(wrapped))
	})
}

func TestStillLockedError(t *testing.T) {
	unlock := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	err := NewStillLockedError("alice", unlock, now)

	assert.ErrorIs(t, err, ErrStillLocked)
	assert.True(t, IsStillLockedError(err))
	assert.Contains(t, err.Error(), "alice")
	assert.Contains(t, err.Error(), "2025-07-01")

	var typed *StillLockedError
	assert.True(t, errors.As(err, &typed))
	assert.Equal(t, unlock, typed.UnlockTime)

	fields := typed.LogFields()
	assert.Equal(t, "still_locked", fields["error_type"])
	assert.Equal(t, CodeStillLocked, fields["error_code"])
}

func TestInsufficientSharesError(t *testing.T) {
	err := NewInsufficientSharesError("bob", 500, 100)

	assert.ErrorIs(t, err, ErrInsufficientShares)
	assert.True(t, IsInsufficientSharesError(err))
	assert.Contains(t, err.Error(), "required 500")
	assert.Contains(t, err.Error(), "available 100")
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError("carol", 1000, 250)

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.True(t, IsInsufficientBalanceError(err))

	var typed *InsufficientBalanceError
	assert.True(t, errors.As(err, &typed))
	assert.Equal(t, int64(1000), typed.Requested)
	assert.Equal(t, int64(250), typed.Available)
}

func TestInstructionError(t *testing.T) {
	inner := ErrInvalidDuration
	err := NewInstructionError("instr-9", "lock_created", "alice", "10.5", "duration out of bounds", inner)

	assert.ErrorIs(t, err, ErrInvalidDuration)
	assert.Contains(t, err.Error(), "instr-9")

	var typed *InstructionError
	assert.True(t, errors.As(err, &typed))
	assert.Equal(t, inner, typed.Unwrap())
	assert.Equal(t, CodeInvalidDuration, typed.LogFields()["error_code"])
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrAccountNotFound))
	assert.True(t, IsNotFoundError(ErrLockNotFound))
	assert.True(t, IsNotFoundError(ErrEventNotFound))
	assert.False(t, IsNotFoundError(ErrAccountLocked))
}

func TestIsDuplicateInstructionError(t *testing.T) {
	assert.True(t, IsDuplicateInstructionError(ErrDuplicateInstruction))
	assert.False(t, IsDuplicateInstructionError(ErrInternalServer))
}

func TestIsAccountLockedError(t *testing.T) {
	assert.True(t, IsAccountLockedError(ErrAccountLocked))
	assert.False(t, IsAccountLockedError(ErrLockNotFound))
}
