package vault

import (
	"context"
	"errors"

	"github.com/velabs/govlock/internal/domain/entity"
	errs "github.com/velabs/govlock/internal/domain/error"
	"github.com/velabs/govlock/internal/domain/port/usecase"
)

// GetAccount returns an owner's share balance and its asset value under the
// current exchange rate. An owner the vault has never seen holds zero shares.
func (s *Service) GetAccount(ctx context.Context, owner string) (*usecase.VaultAccountState, error) {
	if owner == "" {
		return nil, errs.ErrInvalidAccount
	}

	account, err := s.vaultRepo.GetAccount(ctx, owner)
	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			account = &entity.VaultAccount{Owner: owner}
		} else {
			return nil, err
		}
	}

	state, err := s.vaultRepo.GetState(ctx)
	if err != nil {
		return nil, err
	}

	value, err := state.ConvertToAssets(account.Shares)
	if err != nil {
		return nil, err
	}

	return &usecase.VaultAccountState{
		Owner:      owner,
		Shares:     entity.FormatAmount(account.Shares),
		AssetValue: entity.FormatAmount(value),
	}, nil
}

// GetState returns the vault aggregates.
func (s *Service) GetState(ctx context.Context) (*usecase.VaultState, error) {
	state, err := s.vaultRepo.GetState(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.VaultState{
		TotalAssets: entity.FormatAmount(state.TotalAssets),
		TotalShares: entity.FormatAmount(state.TotalShares),
	}, nil
}

// ConvertToShares previews the shares an asset amount would mint right now.
func (s *Service) ConvertToShares(ctx context.Context, assets string) (string, error) {
	baseUnits, err := entity.ParseAmount(assets)
	if err != nil {
		return "", err
	}

	state, err := s.vaultRepo.GetState(ctx)
	if err != nil {
		return "", err
	}

	shares, err := state.ConvertToShares(baseUnits)
	if err != nil {
		return "", err
	}
	return entity.FormatAmount(shares), nil
}

// ConvertToAssets previews the assets a share amount would redeem right now.
func (s *Service) ConvertToAssets(ctx context.Context, shares string) (string, error) {
	baseUnits, err := entity.ParseAmount(shares)
	if err != nil {
		return "", err
	}

	state, err := s.vaultRepo.GetState(ctx)
	if err != nil {
		return "", err
	}

	assets, err := state.ConvertToAssets(baseUnits)
	if err != nil {
		return "", err
	}
	return entity.FormatAmount(assets), nil
}
