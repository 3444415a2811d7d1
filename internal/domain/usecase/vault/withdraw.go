package vault

import (
	"context"
	"errors"

	"github.com/velabs/govlock/internal/domain/entity"
	errs "github.com/velabs/govlock/internal/domain/error"
	"github.com/velabs/govlock/internal/domain/port/usecase"
)

// Withdraw redeems assets from the vault: the shares covering the requested
// assets at the current rate are burned from the owner and the underlying is
// paid to the receiver. Share pricing rounds down, so the burn never
// undercharges the pool.
func (s *Service) Withdraw(ctx context.Context, instr usecase.VaultWithdrawInstruction) (*usecase.VaultOperationResult, error) {
	assets, err := validateVaultAmount(instr.InstructionID, instr.Caller, instr.Receiver, instr.Assets)
	if err != nil {
		return nil, err
	}
	if instr.Owner == "" {
		return nil, errs.ErrInvalidAccount
	}

	var result *usecase.VaultOperationResult
	err = s.withVaultLock(ctx, func(ctx context.Context) error {
		prior, err := s.eventRepo.GetByInstructionID(ctx, instr.InstructionID)
		if err == nil {
			result = priorResult(prior)
			return nil
		}
		if !errors.Is(err, errs.ErrEventNotFound) {
			return err
		}

		now := s.timeProvider.Now()

		return s.inTransaction(ctx, func(txCtx context.Context) error {
			vaults := s.uow.VaultRepository(txCtx)
			balances := s.uow.BalanceRepository(txCtx)
			events := s.uow.EventRepository(txCtx)

			state, err := vaults.GetState(txCtx)
			if err != nil {
				return err
			}
			// Floor-rounded pricing alone does not bound the payout: off the
			// 1:1 rate the covering shares can clear the owner's balance while
			// the assets exceed the pool.
			if assets > state.TotalAssets {
				return errs.ErrInsufficientAssets
			}

			shares, err := state.ConvertToShares(assets)
			if err != nil {
				return err
			}

			account, err := vaults.GetAccount(txCtx, instr.Owner)
			if err != nil {
				if errors.Is(err, errs.ErrAccountNotFound) {
					return errs.NewInsufficientSharesError(instr.Owner, shares, 0)
				}
				return err
			}
			if account.Shares < shares {
				return errs.NewInsufficientSharesError(instr.Owner, shares, account.Shares)
			}

			account.Shares -= shares
			account.UpdatedAt = now
			state.ApplyWithdraw(assets, shares, now)

			if err := vaults.SaveState(txCtx, state); err != nil {
				return err
			}
			if err := vaults.UpsertAccount(txCtx, account); err != nil {
				return err
			}

			if err := balances.Transfer(txCtx, entity.VaultAccountID, instr.Receiver, assets); err != nil {
				return err
			}

			event := &entity.Event{
				InstructionID: instr.InstructionID,
				Kind:          entity.EventVaultWithdraw,
				Actor:         instr.Caller,
				Owner:         instr.Owner,
				Receiver:      instr.Receiver,
				Amount:        assets,
				Shares:        shares,
				ResultAmount:  account.Shares,
				CreatedAt:     now,
			}
			if err := events.Append(txCtx, event); err != nil {
				return err
			}

			s.logger.Info("Vault withdrawal applied", map[string]any{
				"instruction_id": instr.InstructionID,
				"caller":         instr.Caller,
				"owner":          instr.Owner,
				"receiver":       instr.Receiver,
				"assets":         entity.FormatAmount(assets),
				"shares":         entity.FormatAmount(shares),
				"total_assets":   entity.FormatAmount(state.TotalAssets),
				"total_shares":   entity.FormatAmount(state.TotalShares),
			})

			result = &usecase.VaultOperationResult{
				Caller:       instr.Caller,
				Owner:        instr.Owner,
				Receiver:     instr.Receiver,
				Assets:       entity.FormatAmount(assets),
				Shares:       entity.FormatAmount(shares),
				ShareBalance: entity.FormatAmount(account.Shares),
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
