package entity

import (
	"math/big"
	"time"

	errs "github.com/velabs/govlock/internal/domain/error"
)

// Vault is the aggregate state of the single-asset share ledger. The exchange
// rate is always TotalAssets/TotalShares; accounts cache nothing, so every
// conversion reflects pool-wide gains or losses at read time.
type Vault struct {
	TotalAssets int64
	TotalShares int64
	UpdatedAt   time.Time
}

// VaultAccount is one owner's fungible claim on the pooled asset.
type VaultAccount struct {
	Owner     string
	Shares    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ConvertToShares converts an asset amount to shares at the current rate,
// rounding down. At genesis (no shares issued) the rate is 1:1. Rounding
// always favours the vault.
func (v *Vault) ConvertToShares(assets int64) (int64, error) {
	if assets < 0 {
		return 0, errs.ErrNegativeAmount
	}
	if v.TotalShares == 0 {
		return assets, nil
	}
	return mulDiv(assets, v.TotalShares, v.TotalAssets)
}

// ConvertToAssets converts shares back to the underlying asset at the current
// rate, rounding down.
func (v *Vault) ConvertToAssets(shares int64) (int64, error) {
	if shares < 0 {
		return 0, errs.ErrNegativeAmount
	}
	if v.TotalShares == 0 {
		return shares, nil
	}
	return mulDiv(shares, v.TotalAssets, v.TotalShares)
}

// ApplyDeposit mints shares for a deposit and moves the aggregates. The share
// count must come from ConvertToShares under the pre-mutation rate.
func (v *Vault) ApplyDeposit(assets, shares int64, now time.Time) error {
	newAssets, err := AddAmounts(v.TotalAssets, assets)
	if err != nil {
		return err
	}
	newShares, err := AddAmounts(v.TotalShares, shares)
	if err != nil {
		return err
	}
	v.TotalAssets = newAssets
	v.TotalShares = newShares
	v.UpdatedAt = now
	return nil
}

// ApplyWithdraw burns shares and releases assets from the aggregates.
func (v *Vault) ApplyWithdraw(assets, shares int64, now time.Time) {
	v.TotalAssets -= assets
	v.TotalShares -= shares
	v.UpdatedAt = now
}

// mulDiv computes a*b/c with floor division through big.Int; the intermediate
// product does not fit in int64. A quotient outside int64 range is an
// overflow error rather than a wrapped value.
func mulDiv(a, b, c int64) (int64, error) {
	out := new(big.Int).SetInt64(a)
	out.Mul(out, big.NewInt(b))
	out.Quo(out, big.NewInt(c))
	if !out.IsInt64() {
		return 0, errs.ErrAmountOverflow
	}
	return out.Int64(), nil
}
