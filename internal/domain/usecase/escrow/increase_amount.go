package escrow

import (
	"context"
	"errors"

	"github.com/velabs/govlock/internal/domain/entity"
	errs "github.com/velabs/govlock/internal/domain/error"
	"github.com/velabs/govlock/internal/domain/port/usecase"
)

// IncreaseAmount adds principal to an active lock without resetting the
// decay clock. A holder tops up conviction; the unlock time stays put, which
// is exactly what distinguishes this from the extension path of CreateLock.
func (s *Service) IncreaseAmount(ctx context.Context, instr usecase.IncreaseInstruction) (*usecase.LockState, error) {
	amount, err := s.validator.ValidateIncrease(instr.InstructionID, instr.Owner, instr.Amount)
	if err != nil {
		return nil, err
	}

	var state *usecase.LockState
	err = s.withAccountLock(ctx, instr.Owner, func(ctx context.Context) error {
		if prior, found, err := checkIdempotency(ctx, s.eventRepo, instr.InstructionID); err != nil {
			return err
		} else if found {
			state = s.stateFromEvent(prior)
			return nil
		}

		now := s.timeProvider.Now()

		return s.inTransaction(ctx, func(txCtx context.Context) error {
			locks := s.uow.LockRepository(txCtx)
			balances := s.uow.BalanceRepository(txCtx)
			events := s.uow.EventRepository(txCtx)

			lock, getErr := locks.GetByOwner(txCtx, instr.Owner)
			if getErr != nil {
				if errors.Is(getErr, errs.ErrLockNotFound) {
					return errs.ErrLockExpired
				}
				return getErr
			}

			if err := lock.IncreaseAmount(amount, now); err != nil {
				return err
			}

			if err := locks.Upsert(txCtx, lock); err != nil {
				return err
			}

			if err := balances.Transfer(txCtx, instr.Owner, entity.EscrowAccountID, amount); err != nil {
				return err
			}

			unlock := lock.UnlockTime
			event := &entity.Event{
				InstructionID: instr.InstructionID,
				Kind:          entity.EventLockIncreased,
				Actor:         instr.Owner,
				Owner:         instr.Owner,
				Amount:        amount,
				ResultAmount:  lock.Amount,
				UnlockTime:    &unlock,
				CreatedAt:     now,
			}
			if err := events.Append(txCtx, event); err != nil {
				return err
			}

			s.logger.Info("Lock amount increased", map[string]any{
				"instruction_id": instr.InstructionID,
				"owner":          instr.Owner,
				"amount":         entity.FormatAmount(amount),
				"lock_amount":    entity.FormatAmount(lock.Amount),
				"unlock_time":    lock.UnlockTime,
			})

			state = lockState(lock, now)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}
