package escrow

import (
	"context"
	"errors"

	"github.com/velabs/govlock/internal/domain/entity"
	errs "github.com/velabs/govlock/internal/domain/error"
	"github.com/velabs/govlock/internal/domain/port/usecase"
)

// CreateLock handles both paths of the locking entry point: a fresh lock for
// an owner with no locked principal, and a top-up that must strictly extend
// the unlock time of an existing position. Both live behind one instruction
// because that is the surface wallets sign against.
func (s *Service) CreateLock(ctx context.Context, instr usecase.LockInstruction) (*usecase.LockState, error) {
	amount, err := s.validator.ValidateLock(instr.InstructionID, instr.Owner, instr.Amount, instr.Duration)
	if err != nil {
		return nil, err
	}

	var state *usecase.LockState
	err = s.withAccountLock(ctx, instr.Owner, func(ctx context.Context) error {
		if prior, found, err := checkIdempotency(ctx, s.eventRepo, instr.InstructionID); err != nil {
			return err
		} else if found {
			s.logger.Info("Replayed lock instruction, returning recorded outcome", map[string]any{
				"instruction_id": instr.InstructionID,
				"owner":          instr.Owner,
			})
			state = s.stateFromEvent(prior)
			return nil
		}

		now := s.timeProvider.Now()

		return s.inTransaction(ctx, func(txCtx context.Context) error {
			locks := s.uow.LockRepository(txCtx)
			balances := s.uow.BalanceRepository(txCtx)
			events := s.uow.EventRepository(txCtx)

			lock, getErr := locks.GetByOwner(txCtx, instr.Owner)
			kind := entity.EventLockCreated

			switch {
			case errors.Is(getErr, errs.ErrLockNotFound):
				lock, getErr = entity.NewLock(instr.Owner, amount, instr.Duration, now)
				if getErr != nil {
					return getErr
				}
			case getErr != nil:
				return getErr
			case lock.Amount == 0:
				// Prior lock fully withdrawn; same as a fresh lock.
				fresh, newErr := entity.NewLock(instr.Owner, amount, instr.Duration, now)
				if newErr != nil {
					return newErr
				}
				fresh.CreatedAt = lock.CreatedAt
				lock = fresh
			default:
				if relockErr := lock.Relock(amount, instr.Duration, now); relockErr != nil {
					return relockErr
				}
				kind = entity.EventLockExtended
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
				Kind:          kind,
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

			s.logger.Info("Lock applied", map[string]any{
				"instruction_id": instr.InstructionID,
				"owner":          instr.Owner,
				"kind":           string(kind),
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

// stateFromEvent rebuilds the lock state recorded by a prior event, deriving
// voting power at the present instant rather than the original apply time.
func (s *Service) stateFromEvent(event *entity.Event) *usecase.LockState {
	lock := &entity.Lock{
		Owner:  event.Owner,
		Amount: event.ResultAmount,
	}
	if event.UnlockTime != nil {
		lock.UnlockTime = *event.UnlockTime
	}
	return lockState(lock, s.timeProvider.Now())
}
