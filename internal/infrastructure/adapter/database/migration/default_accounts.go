package migration

import (
	"context"
	"errors"

	"github.com/velabs/govlock/internal/domain/entity"
	errs "github.com/velabs/govlock/internal/domain/error"
	"github.com/velabs/govlock/internal/domain/port/persistence"
)

// Default development accounts and their token balances
var defaultAccounts = map[string]string{
	"alice":   "1000.00000000",
	"bob":     "2500.00000000",
	"charlie": "500.00000000",
}

// SeedDefaultAccounts funds the default development accounts and makes sure
// the system accounts exist. Accounts that already hold a balance are left
// untouched so reseeding is safe.
func SeedDefaultAccounts(ctx context.Context, balances persistence.BalanceRepository) error {
	// System accounts start empty; they accumulate through transfers only
	for _, system := range []string{entity.EscrowAccountID, entity.VaultAccountID} {
		if _, err := balances.GetBalance(ctx, system); err != nil {
			if !errors.Is(err, errs.ErrAccountNotFound) {
				return err
			}
			if err := balances.Credit(ctx, system, 0); err != nil {
				return err
			}
		}
	}

	for account, balance := range defaultAccounts {
		if _, err := balances.GetBalance(ctx, account); err == nil {
			continue
		} else if !errors.Is(err, errs.ErrAccountNotFound) {
			return err
		}

		amount, err := entity.ParseAmount(balance)
		if err != nil {
			return err
		}

		if err := balances.Credit(ctx, account, amount); err != nil {
			return err
		}
	}

	return nil
}
