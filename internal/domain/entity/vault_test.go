package entity

import (
	"math"
	"testing"
	"time"

	errs "github.com/velabs/govlock/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

var vaultTestNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestVaultConvertToShares(t *testing.T) {
	t.Run("Genesis rate is one to one", func(t *testing.T) {
		vault := &Vault{}

		shares, err := vault.ConvertToShares(100000000)
		assert.NoError(t, err)
		assert.Equal(t, int64(100000000), shares)
	})

	t.Run("Uses the current exchange rate", func(t *testing.T) {
		// 200 assets back 100 shares, so 1 share is worth 2 assets
		vault := &Vault{TotalAssets: 20000000000, TotalShares: 10000000000}

		shares, err := vault.ConvertToShares(10000000000)
		assert.NoError(t, err)
		assert.Equal(t, int64(5000000000), shares)
	})

	t.Run("Rounds down in favour of the vault", func(t *testing.T) {
		vault := &Vault{TotalAssets: 3, TotalShares: 1}

		shares, err := vault.ConvertToShares(2)
		assert.NoError(t, err)
		// 2*1/3 = 0.66..., floored
		assert.Equal(t, int64(0), shares)
	})

	t.Run("Negative assets", func(t *testing.T) {
		vault := &Vault{}

		_, err := vault.ConvertToShares(-1)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestVaultConvertToAssets(t *testing.T) {
	t.Run("Genesis rate is one to one", func(t *testing.T) {
		vault := &Vault{}

		assets, err := vault.ConvertToAssets(100000000)
		assert.NoError(t, err)
		assert.Equal(t, int64(100000000), assets)
	})

	t.Run("Uses the current exchange rate", func(t *testing.T) {
		vault := &Vault{TotalAssets: 20000000000, TotalShares: 10000000000}

		assets, err := vault.ConvertToAssets(5000000000)
		assert.NoError(t, err)
		assert.Equal(t, int64(10000000000), assets)
	})

	t.Run("Rounds down", func(t *testing.T) {
		vault := &Vault{TotalAssets: 10, TotalShares: 3}

		assets, err := vault.ConvertToAssets(1)
		assert.NoError(t, err)
		// 1*10/3 = 3.33..., floored
		assert.Equal(t, int64(3), assets)
	})

	t.Run("Negative shares", func(t *testing.T) {
		vault := &Vault{}

		_, err := vault.ConvertToAssets(-1)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestVaultRoundTripNeverGains(t *testing.T) {
	// Depositing and immediately redeeming may lose dust to rounding but can
	// never extract more than was put in.
	vaults := []*Vault{
		{TotalAssets: 3, TotalShares: 1},
		{TotalAssets: 7, TotalShares: 5},
		{TotalAssets: 10000000001, TotalShares: 9999999999},
		{TotalAssets: 1, TotalShares: 1000},
	}
	amounts := []int64{1, 2, 3, 99, 100000001}

	for _, vault := range vaults {
		for _, assets := range amounts {
			shares, err := vault.ConvertToShares(assets)
			assert.NoError(t, err)

			back, err := vault.ConvertToAssets(shares)
			assert.NoError(t, err)
			assert.LessOrEqual(t, back, assets)
		}
	}
}

func TestVaultApplyDeposit(t *testing.T) {
	t.Run("Moves both aggregates", func(t *testing.T) {
		vault := &Vault{TotalAssets: 100, TotalShares: 50}

		err := vault.ApplyDeposit(40, 20, vaultTestNow)
		assert.NoError(t, err)
		assert.Equal(t, int64(140), vault.TotalAssets)
		assert.Equal(t, int64(70), vault.TotalShares)
		assert.Equal(t, vaultTestNow, vault.UpdatedAt)
	})

	t.Run("Overflow is rejected before mutation", func(t *testing.T) {
		vault := &Vault{TotalAssets: math.MaxInt64, TotalShares: 50}

		err := vault.ApplyDeposit(1, 1, vaultTestNow)
		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
		assert.Equal(t, int64(math.MaxInt64), vault.TotalAssets)
		assert.Equal(t, int64(50), vault.TotalShares)
	})
}

func TestVaultApplyWithdraw(t *testing.T) {
	vault := &Vault{TotalAssets: 140, TotalShares: 70}

	vault.ApplyWithdraw(40, 20, vaultTestNow)
	assert.Equal(t, int64(100), vault.TotalAssets)
	assert.Equal(t, int64(50), vault.TotalShares)
	assert.Equal(t, vaultTestNow, vault.UpdatedAt)
}

func TestMulDivOverflow(t *testing.T) {
	// Quotient larger than int64 must fail rather than wrap
	_, err := mulDiv(math.MaxInt64, math.MaxInt64, 1)
	assert.ErrorIs(t, err, errs.ErrAmountOverflow)

	// Intermediate product beyond int64 is fine when the quotient fits
	out, err := mulDiv(math.MaxInt64, 10, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64/2), out)
}
