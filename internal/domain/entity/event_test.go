package entity

import (
	"testing"
	"time"

	errs "github.com/velabs/govlock/internal/domain/error"
	mcore "github.com/velabs/govlock/mocks/port/core"
	"github.com/stretchr/testify/assert"
)

func TestNewEvent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid event", func(t *testing.T) {
		timeProvider := new(mcore.MockTimeProvider)
		timeProvider.On("Now").Return(now)

		event, err := NewEvent("instr-1", EventLockCreated, "alice", "alice", timeProvider)
		assert.NoError(t, err)
		assert.Equal(t, "instr-1", event.InstructionID)
		assert.Equal(t, EventLockCreated, event.Kind)
		assert.Equal(t, now, event.CreatedAt)
	})

	t.Run("Empty instruction ID", func(t *testing.T) {
		timeProvider := new(mcore.MockTimeProvider)

		_, err := NewEvent("", EventLockCreated, "alice", "alice", timeProvider)
		assert.ErrorIs(t, err, errs.ErrInvalidInstructionID)
	})

	t.Run("Empty actor", func(t *testing.T) {
		timeProvider := new(mcore.MockTimeProvider)

		_, err := NewEvent("instr-1", EventLockCreated, "", "alice", timeProvider)
		assert.ErrorIs(t, err, errs.ErrInvalidAccount)
	})
}

func TestEventKindPredicates(t *testing.T) {
	lockKinds := []EventKind{EventLockCreated, EventLockExtended, EventLockIncreased, EventLockWithdrawn}
	for _, kind := range lockKinds {
		event := &Event{Kind: kind}
		assert.True(t, event.IsLockEvent(), string(kind))
		assert.False(t, event.IsVaultEvent(), string(kind))
	}

	vaultKinds := []EventKind{EventVaultDeposit, EventVaultWithdraw}
	for _, kind := range vaultKinds {
		event := &Event{Kind: kind}
		assert.True(t, event.IsVaultEvent(), string(kind))
		assert.False(t, event.IsLockEvent(), string(kind))
	}
}
