package vault

import (
	"context"
	"testing"

	"github.com/velabs/govlock/internal/domain/entity"
	errs "github.com/velabs/govlock/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestVaultGetAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Values shares at the current rate", func(t *testing.T) {
		service, m := newVaultService(t)

		// 1 share is worth 2 assets
		m.vaultRepo.On("GetAccount", ctx, "alice").
			Return(&entity.VaultAccount{Owner: "alice", Shares: 5000000000}, nil)
		m.vaultRepo.On("GetState", ctx).
			Return(&entity.Vault{TotalAssets: 20000000000, TotalShares: 10000000000}, nil)

		state, err := service.GetAccount(ctx, "alice")
		assert.NoError(t, err)
		assert.Equal(t, "50.00000000", state.Shares)
		assert.Equal(t, "100.00000000", state.AssetValue)
	})

	t.Run("Unknown owner holds zero shares", func(t *testing.T) {
		service, m := newVaultService(t)

		m.vaultRepo.On("GetAccount", ctx, "nobody").Return(nil, errs.ErrAccountNotFound)
		m.vaultRepo.On("GetState", ctx).Return(&entity.Vault{}, nil)

		state, err := service.GetAccount(ctx, "nobody")
		assert.NoError(t, err)
		assert.Equal(t, "0.00000000", state.Shares)
		assert.Equal(t, "0.00000000", state.AssetValue)
	})

	t.Run("Empty owner", func(t *testing.T) {
		service, _ := newVaultService(t)

		_, err := service.GetAccount(ctx, "")
		assert.ErrorIs(t, err, errs.ErrInvalidAccount)
	})
}

func TestVaultGetState(t *testing.T) {
	ctx := context.Background()
	service, m := newVaultService(t)

	m.vaultRepo.On("GetState", ctx).
		Return(&entity.Vault{TotalAssets: 30000000000, TotalShares: 10000000000}, nil)

	state, err := service.GetState(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "300.00000000", state.TotalAssets)
	assert.Equal(t, "100.00000000", state.TotalShares)
}

func TestConvertToShares(t *testing.T) {
	ctx := context.Background()

	t.Run("Genesis previews one to one", func(t *testing.T) {
		service, m := newVaultService(t)

		m.vaultRepo.On("GetState", ctx).Return(&entity.Vault{}, nil)

		shares, err := service.ConvertToShares(ctx, "10")
		assert.NoError(t, err)
		assert.Equal(t, "10.00000000", shares)
	})

	t.Run("Current rate with floor rounding", func(t *testing.T) {
		service, m := newVaultService(t)

		m.vaultRepo.On("GetState", ctx).
			Return(&entity.Vault{TotalAssets: 3, TotalShares: 1}, nil)

		shares, err := service.ConvertToShares(ctx, "0.00000002")
		assert.NoError(t, err)
		assert.Equal(t, "0.00000000", shares)
	})

	t.Run("Malformed amount", func(t *testing.T) {
		service, _ := newVaultService(t)

		_, err := service.ConvertToShares(ctx, "not-a-number")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestConvertToAssets(t *testing.T) {
	ctx := context.Background()

	t.Run("Current rate", func(t *testing.T) {
		service, m := newVaultService(t)

		m.vaultRepo.On("GetState", ctx).
			Return(&entity.Vault{TotalAssets: 20000000000, TotalShares: 10000000000}, nil)

		assets, err := service.ConvertToAssets(ctx, "50")
		assert.NoError(t, err)
		assert.Equal(t, "100.00000000", assets)
	})

	t.Run("Negative shares", func(t *testing.T) {
		service, _ := newVaultService(t)

		_, err := service.ConvertToAssets(ctx, "-1")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}
