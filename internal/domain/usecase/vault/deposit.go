package vault

import (
	"context"
	"errors"

	"github.com/velabs/govlock/internal/domain/entity"
	errs "github.com/velabs/govlock/internal/domain/error"
	"github.com/velabs/govlock/internal/domain/port/usecase"
)

// Deposit moves underlying assets from the caller into the vault and mints
// shares for the receiver at the pre-mutation exchange rate, rounding down.
func (s *Service) Deposit(ctx context.Context, instr usecase.DepositInstruction) (*usecase.VaultOperationResult, error) {
	assets, err := validateVaultAmount(instr.InstructionID, instr.Caller, instr.Receiver, instr.Assets)
	if err != nil {
		return nil, err
	}

	var result *usecase.VaultOperationResult
	err = s.withVaultLock(ctx, func(ctx context.Context) error {
		prior, err := s.eventRepo.GetByInstructionID(ctx, instr.InstructionID)
		if err == nil {
			s.logger.Info("Replayed deposit instruction, returning recorded outcome", map[string]any{
				"instruction_id": instr.InstructionID,
			})
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

			shares, err := state.ConvertToShares(assets)
			if err != nil {
				return err
			}

			account, err := getOrCreateAccount(txCtx, vaults, instr.Receiver, now)
			if err != nil {
				return err
			}

			newShares, err := entity.AddAmounts(account.Shares, shares)
			if err != nil {
				return err
			}
			account.Shares = newShares
			account.UpdatedAt = now

			if err := state.ApplyDeposit(assets, shares, now); err != nil {
				return err
			}

			if err := vaults.SaveState(txCtx, state); err != nil {
				return err
			}
			if err := vaults.UpsertAccount(txCtx, account); err != nil {
				return err
			}

			if err := balances.Transfer(txCtx, instr.Caller, entity.VaultAccountID, assets); err != nil {
				return err
			}

			event := &entity.Event{
				InstructionID: instr.InstructionID,
				Kind:          entity.EventVaultDeposit,
				Actor:         instr.Caller,
				Owner:         instr.Receiver,
				Receiver:      instr.Receiver,
				Amount:        assets,
				Shares:        shares,
				ResultAmount:  account.Shares,
				CreatedAt:     now,
			}
			if err := events.Append(txCtx, event); err != nil {
				return err
			}

			s.logger.Info("Vault deposit applied", map[string]any{
				"instruction_id": instr.InstructionID,
				"caller":         instr.Caller,
				"receiver":       instr.Receiver,
				"assets":         entity.FormatAmount(assets),
				"shares":         entity.FormatAmount(shares),
				"total_assets":   entity.FormatAmount(state.TotalAssets),
				"total_shares":   entity.FormatAmount(state.TotalShares),
			})

			result = &usecase.VaultOperationResult{
				Caller:       instr.Caller,
				Owner:        instr.Receiver,
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

// validateVaultAmount checks the shared preconditions of vault instructions
// and parses the asset amount. Zero assets fail with the categorical
// ZeroAssets error.
func validateVaultAmount(instructionID, caller, receiver, assets string) (int64, error) {
	if instructionID == "" {
		return 0, errs.ErrInvalidInstructionID
	}
	if caller == "" || receiver == "" {
		return 0, errs.ErrInvalidAccount
	}

	baseUnits, err := entity.ParseAmount(assets)
	if err != nil {
		return 0, err
	}
	if baseUnits == 0 {
		return 0, errs.ErrZeroAssets
	}
	return baseUnits, nil
}
