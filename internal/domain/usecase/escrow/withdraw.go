package escrow

import (
	"context"

	"github.com/velabs/govlock/internal/domain/entity"
	"github.com/velabs/govlock/internal/domain/port/usecase"
)

// Withdraw releases the full principal after the unlock time has passed and
// zeroes the lock. The zeroed record stays in place, so the position remains
// queryable with zero voting power.
func (s *Service) Withdraw(ctx context.Context, instr usecase.WithdrawInstruction) (*usecase.WithdrawResult, error) {
	if err := s.validator.ValidateWithdraw(instr.InstructionID, instr.Owner); err != nil {
		return nil, err
	}

	var result *usecase.WithdrawResult
	err := s.withAccountLock(ctx, instr.Owner, func(ctx context.Context) error {
		if prior, found, err := checkIdempotency(ctx, s.eventRepo, instr.InstructionID); err != nil {
			return err
		} else if found {
			result = &usecase.WithdrawResult{
				Owner:    prior.Owner,
				Returned: entity.FormatAmount(prior.Amount),
			}
			return nil
		}

		now := s.timeProvider.Now()

		return s.inTransaction(ctx, func(txCtx context.Context) error {
			locks := s.uow.LockRepository(txCtx)
			balances := s.uow.BalanceRepository(txCtx)
			events := s.uow.EventRepository(txCtx)

			lock, err := locks.GetByOwner(txCtx, instr.Owner)
			if err != nil {
				return err
			}

			released, err := lock.Withdraw(now)
			if err != nil {
				return err
			}

			if err := locks.Upsert(txCtx, lock); err != nil {
				return err
			}

			if err := balances.Transfer(txCtx, entity.EscrowAccountID, instr.Owner, released); err != nil {
				return err
			}

			event := &entity.Event{
				InstructionID: instr.InstructionID,
				Kind:          entity.EventLockWithdrawn,
				Actor:         instr.Owner,
				Owner:         instr.Owner,
				Amount:        released,
				ResultAmount:  0,
				CreatedAt:     now,
			}
			if err := events.Append(txCtx, event); err != nil {
				return err
			}

			s.logger.Info("Lock withdrawn", map[string]any{
				"instruction_id": instr.InstructionID,
				"owner":          instr.Owner,
				"returned":       entity.FormatAmount(released),
			})

			result = &usecase.WithdrawResult{
				Owner:    instr.Owner,
				Returned: entity.FormatAmount(released),
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
