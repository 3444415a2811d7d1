package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/velabs/govlock/internal/domain/entity"
	errs "github.com/velabs/govlock/internal/domain/error"
	coreport "github.com/velabs/govlock/internal/domain/port/core"
	"github.com/velabs/govlock/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BalanceRepository implements the token-transfer capability using GORM.
// Every movement of tokens is a paired debit and credit so the ledger
// always sums to the total minted supply.
type BalanceRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewBalanceRepository creates a new BalanceRepository instance
func NewBalanceRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *BalanceRepository {
	return &BalanceRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// GetBalance returns an account's token balance in base units
func (r *BalanceRepository) GetBalance(ctx context.Context, account string) (int64, error) {
	var balanceModel model.TokenBalance
	result := r.db.WithContext(ctx).Where("account = ?", account).First(&balanceModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Warn("Token account not found", map[string]any{
				"account": account,
			})
			return 0, errs.ErrAccountNotFound
		}
		r.logger.Error("Database error when getting balance", map[string]any{
			"account": account,
			"error":   result.Error.Error(),
		})
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return balanceModel.Balance, nil
}

// Transfer moves amount base units from one account to another. The debit
// uses a guarded UPDATE so a concurrent spend cannot drive the source
// negative even outside SERIALIZABLE isolation.
func (r *BalanceRepository) Transfer(ctx context.Context, from, to string, amount int64) error {
	r.logger.Debug("Transferring tokens", map[string]any{
		"from":   from,
		"to":     to,
		"amount": entity.FormatAmount(amount),
	})

	now := r.timeProvider.Now()

	debit := r.db.WithContext(ctx).Model(&model.TokenBalance{}).
		Where("account = ? AND balance >= ?", from, amount).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance - ?", amount),
			"updated_at": now,
		})

	if debit.Error != nil {
		r.logger.Error("Failed to debit source account", map[string]any{
			"account":    from,
			"error":      debit.Error.Error(),
			"error_type": string(r.errorClassifier.Classify(debit.Error)),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, debit.Error.Error())
	}

	if debit.RowsAffected == 0 {
		// Either the account is missing or it cannot cover the amount
		balance, err := r.GetBalance(ctx, from)
		if err != nil {
			return err
		}
		r.logger.Warn("Insufficient balance for transfer", map[string]any{
			"account":   from,
			"balance":   entity.FormatAmount(balance),
			"requested": entity.FormatAmount(amount),
		})
		return errs.NewInsufficientBalanceError(from, amount, balance)
	}

	if err := r.creditInternal(ctx, to, amount, now); err != nil {
		return err
	}

	r.logger.Info("Transfer completed successfully", map[string]any{
		"from":   from,
		"to":     to,
		"amount": entity.FormatAmount(amount),
	})
	return nil
}

// Credit mints amount base units onto an account, creating it if needed
func (r *BalanceRepository) Credit(ctx context.Context, account string, amount int64) error {
	r.logger.Debug("Crediting account", map[string]any{
		"account": account,
		"amount":  entity.FormatAmount(amount),
	})

	return r.creditInternal(ctx, account, amount, r.timeProvider.Now())
}

// creditInternal adds to an account's balance, inserting the row on first use
func (r *BalanceRepository) creditInternal(ctx context.Context, account string, amount int64, now time.Time) error {
	balanceModel := model.TokenBalance{
		Account:   account,
		Balance:   amount,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"balance":    gorm.Expr("token_balances.balance + ?", amount),
			"updated_at": now,
		}),
	}).Create(&balanceModel)

	if result.Error != nil {
		r.logger.Error("Failed to credit account", map[string]any{
			"account":    account,
			"error":      result.Error.Error(),
			"error_type": string(r.errorClassifier.Classify(result.Error)),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return nil
}
