package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/velabs/govlock/internal/domain/entity"
	errs "github.com/velabs/govlock/internal/domain/error"
	coreport "github.com/velabs/govlock/internal/domain/port/core"
	"github.com/velabs/govlock/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// vaultStateID is the primary key of the singleton aggregate row.
const vaultStateID = 1

// VaultRepository implements VaultRepository interface using GORM
type VaultRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewVaultRepository creates a new VaultRepository instance
func NewVaultRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *VaultRepository {
	return &VaultRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// handleDatabaseError standardizes database error handling
func (r *VaultRepository) handleDatabaseError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	if r.errorClassifier.IsLockError(err) {
		return errs.ErrAccountLocked
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetState retrieves the vault aggregates, initializing a zeroed genesis
// state on first access
func (r *VaultRepository) GetState(ctx context.Context) (*entity.Vault, error) {
	var stateModel model.VaultState
	result := r.db.WithContext(ctx).First(&stateModel, vaultStateID)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Debug("Vault state not initialized, returning genesis state", nil)
			return &entity.Vault{UpdatedAt: r.timeProvider.Now()}, nil
		}
		return nil, r.handleDatabaseError("getting vault state", result.Error)
	}

	return &entity.Vault{
		TotalAssets: stateModel.TotalAssets,
		TotalShares: stateModel.TotalShares,
		UpdatedAt:   stateModel.UpdatedAt,
	}, nil
}

// SaveState writes the vault aggregates back
func (r *VaultRepository) SaveState(ctx context.Context, vault *entity.Vault) error {
	r.logger.Debug("Saving vault state", map[string]any{
		"total_assets": entity.FormatAmount(vault.TotalAssets),
		"total_shares": entity.FormatAmount(vault.TotalShares),
	})

	stateModel := model.VaultState{
		ID:          vaultStateID,
		TotalAssets: vault.TotalAssets,
		TotalShares: vault.TotalShares,
		CreatedAt:   vault.UpdatedAt,
		UpdatedAt:   vault.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_assets", "total_shares", "updated_at"}),
	}).Create(&stateModel)

	if result.Error != nil {
		return r.handleDatabaseError("saving vault state", result.Error)
	}

	return nil
}

// GetAccount retrieves an owner's share balance
func (r *VaultRepository) GetAccount(ctx context.Context, owner string) (*entity.VaultAccount, error) {
	r.logger.Debug("Getting vault account", map[string]any{
		"owner": owner,
	})

	var accountModel model.VaultAccount
	result := r.db.WithContext(ctx).Where("owner = ?", owner).First(&accountModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Debug("Vault account not found", map[string]any{
				"owner": owner,
			})
			return nil, errs.ErrAccountNotFound
		}
		return nil, r.handleDatabaseError("getting vault account", result.Error)
	}

	return &entity.VaultAccount{
		Owner:     accountModel.Owner,
		Shares:    accountModel.Shares,
		CreatedAt: accountModel.CreatedAt,
		UpdatedAt: accountModel.UpdatedAt,
	}, nil
}

// UpsertAccount creates or replaces an owner's share balance
func (r *VaultRepository) UpsertAccount(ctx context.Context, account *entity.VaultAccount) error {
	r.logger.Debug("Upserting vault account", map[string]any{
		"owner":  account.Owner,
		"shares": entity.FormatAmount(account.Shares),
	})

	accountModel := model.VaultAccount{
		Owner:     account.Owner,
		Shares:    account.Shares,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner"}},
		DoUpdates: clause.AssignmentColumns([]string{"shares", "updated_at"}),
	}).Create(&accountModel)

	if result.Error != nil {
		return r.handleDatabaseError("upserting vault account", result.Error)
	}

	r.logger.Info("Vault account saved successfully", map[string]any{
		"owner":  account.Owner,
		"shares": entity.FormatAmount(account.Shares),
	})
	return nil
}
