package escrow

import (
	"context"
	"testing"
	"time"

	"github.com/velabs/govlock/internal/domain/entity"
	errs "github.com/velabs/govlock/internal/domain/error"
	"github.com/velabs/govlock/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWithdraw(t *testing.T) {
	ctx := context.Background()
	instr := usecase.WithdrawInstruction{
		InstructionID: "instr-3",
		Owner:         "alice",
	}
	locked := int64(100 * 100000000)

	t.Run("Releases the full principal after expiry", func(t *testing.T) {
		service, m := newEscrowService(t)
		m.expectAccountLock("alice")
		txCtx := m.expectTransaction(ctx)

		lock := &entity.Lock{Owner: "alice", Amount: locked, UnlockTime: testNow.Add(-time.Minute)}

		m.eventRepo.On("GetByInstructionID", mock.Anything, "instr-3").Return(nil, errs.ErrEventNotFound)
		m.timeProvider.On("Now").Return(testNow)

		m.txLocks.On("GetByOwner", txCtx, "alice").Return(lock, nil)
		m.txLocks.On("Upsert", txCtx, mock.MatchedBy(func(l *entity.Lock) bool {
			return l.Amount == 0 && l.UnlockTime.IsZero()
		})).Return(nil)
		m.txBalances.On("Transfer", txCtx, entity.EscrowAccountID, "alice", locked).Return(nil)
		m.txEvents.On("Append", txCtx, mock.MatchedBy(func(event *entity.Event) bool {
			return event.Kind == entity.EventLockWithdrawn &&
				event.Amount == locked &&
				event.ResultAmount == 0
		})).Return(nil)

		result, err := service.Withdraw(ctx, instr)
		assert.NoError(t, err)
		assert.Equal(t, "alice", result.Owner)
		assert.Equal(t, "100.00000000", result.Returned)

		m.txLocks.AssertExpectations(t)
		m.txBalances.AssertExpectations(t)
		m.txEvents.AssertExpectations(t)
	})

	t.Run("Still locked", func(t *testing.T) {
		service, m := newEscrowService(t)
		m.expectAccountLock("alice")
		txCtx := m.expectRollbackTransaction(ctx)

		lock := &entity.Lock{Owner: "alice", Amount: locked, UnlockTime: testNow.Add(time.Hour)}

		m.eventRepo.On("GetByInstructionID", mock.Anything, "instr-3").Return(nil, errs.ErrEventNotFound)
		m.timeProvider.On("Now").Return(testNow)
		m.txLocks.On("GetByOwner", txCtx, "alice").Return(lock, nil)

		_, err := service.Withdraw(ctx, instr)
		assert.ErrorIs(t, err, errs.ErrStillLocked)

		var typed *errs.StillLockedError
		assert.ErrorAs(t, err, &typed)
		assert.Equal(t, lock.UnlockTime, typed.UnlockTime)

		m.txBalances.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("No lock to withdraw", func(t *testing.T) {
		service, m := newEscrowService(t)
		m.expectAccountLock("alice")
		txCtx := m.expectRollbackTransaction(ctx)

		m.eventRepo.On("GetByInstructionID", mock.Anything, "instr-3").Return(nil, errs.ErrEventNotFound)
		m.timeProvider.On("Now").Return(testNow)
		m.txLocks.On("GetByOwner", txCtx, "alice").Return(nil, errs.ErrLockNotFound)

		_, err := service.Withdraw(ctx, instr)
		assert.ErrorIs(t, err, errs.ErrLockNotFound)
	})

	t.Run("Replayed withdrawal returns the recorded principal", func(t *testing.T) {
		service, m := newEscrowService(t)
		m.expectAccountLock("alice")

		prior := &entity.Event{
			InstructionID: "instr-3",
			Kind:          entity.EventLockWithdrawn,
			Owner:         "alice",
			Amount:        locked,
		}

		m.eventRepo.On("GetByInstructionID", mock.Anything, "instr-3").Return(prior, nil)

		result, err := service.Withdraw(ctx, instr)
		assert.NoError(t, err)
		assert.Equal(t, "100.00000000", result.Returned)

		m.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Empty owner", func(t *testing.T) {
		service, _ := newEscrowService(t)

		_, err := service.Withdraw(ctx, usecase.WithdrawInstruction{InstructionID: "instr-3"})
		assert.ErrorIs(t, err, errs.ErrInvalidAccount)
	})
}
