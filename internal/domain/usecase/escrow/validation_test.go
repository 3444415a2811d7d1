package escrow

import (
	"testing"
	"time"

	"github.com/velabs/govlock/internal/domain/entity"
	errs "github.com/velabs/govlock/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestValidateLock(t *testing.T) {
	validator := NewInstructionValidator()

	t.Run("Valid instruction", func(t *testing.T) {
		amount, err := validator.ValidateLock("instr-1", "alice", "10.5", entity.MinLockDuration)
		assert.NoError(t, err)
		assert.Equal(t, int64(1050000000), amount)
	})

	testCases := []struct {
		name          string
		instructionID string
		owner         string
		amount        string
		duration      time.Duration
		errorType     error
	}{
		{"Empty instruction ID", "", "alice", "10.5", entity.MinLockDuration, errs.ErrInvalidInstructionID},
		{"Empty owner", "instr-1", "", "10.5", entity.MinLockDuration, errs.ErrInvalidAccount},
		{"Zero amount", "instr-1", "alice", "0", entity.MinLockDuration, errs.ErrZeroAmount},
		{"Negative amount", "instr-1", "alice", "-1", entity.MinLockDuration, errs.ErrNegativeAmount},
		{"Malformed amount", "instr-1", "alice", "ten", entity.MinLockDuration, errs.ErrInvalidAmount},
		{"Too many decimals", "instr-1", "alice", "1.000000001", entity.MinLockDuration, errs.ErrInvalidAmount},
		{"Duration too short", "instr-1", "alice", "10.5", 6 * 24 * time.Hour, errs.ErrInvalidDuration},
		{"Duration too long", "instr-1", "alice", "10.5", entity.MaxLockDuration + time.Minute, errs.ErrInvalidDuration},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validator.ValidateLock(tc.instructionID, tc.owner, tc.amount, tc.duration)
			assert.ErrorIs(t, err, tc.errorType)
		})
	}
}

func TestValidateIncrease(t *testing.T) {
	validator := NewInstructionValidator()

	amount, err := validator.ValidateIncrease("instr-1", "alice", "2")
	assert.NoError(t, err)
	assert.Equal(t, int64(200000000), amount)

	_, err = validator.ValidateIncrease("instr-1", "alice", "0.0")
	assert.ErrorIs(t, err, errs.ErrZeroAmount)

	_, err = validator.ValidateIncrease("", "alice", "2")
	assert.ErrorIs(t, err, errs.ErrInvalidInstructionID)
}

func TestValidateWithdraw(t *testing.T) {
	validator := NewInstructionValidator()

	assert.NoError(t, validator.ValidateWithdraw("instr-1", "alice"))
	assert.ErrorIs(t, validator.ValidateWithdraw("", "alice"), errs.ErrInvalidInstructionID)
	assert.ErrorIs(t, validator.ValidateWithdraw("instr-1", ""), errs.ErrInvalidAccount)
}
