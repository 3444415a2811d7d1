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

// LockRepository implements LockRepository interface using GORM
type LockRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewLockRepository creates a new LockRepository instance
func NewLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *LockRepository {
	return &LockRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a lock model to an entity
func (r *LockRepository) modelToEntity(lockModel *model.Lock) *entity.Lock {
	lock := &entity.Lock{
		Owner:     lockModel.Owner,
		Amount:    lockModel.Amount,
		CreatedAt: lockModel.CreatedAt,
		UpdatedAt: lockModel.UpdatedAt,
	}
	if lockModel.UnlockTime != nil {
		lock.UnlockTime = *lockModel.UnlockTime
	}
	return lock
}

// entityToModel converts a lock entity to a database model.
// A zero unlock time is stored as NULL so withdrawn locks are easy to filter.
func (r *LockRepository) entityToModel(lock *entity.Lock) model.Lock {
	lockModel := model.Lock{
		Owner:     lock.Owner,
		Amount:    lock.Amount,
		CreatedAt: lock.CreatedAt,
		UpdatedAt: lock.UpdatedAt,
	}
	if !lock.UnlockTime.IsZero() {
		unlockTime := lock.UnlockTime
		lockModel.UnlockTime = &unlockTime
	}
	return lockModel
}

// handleDatabaseError standardizes database error handling
func (r *LockRepository) handleDatabaseError(operation string, err error, owner string) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"owner": owner,
		"error": err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Lock not found", map[string]any{
			"owner": owner,
		})
		return errs.ErrLockNotFound
	}

	if r.errorClassifier.IsLockError(err) {
		r.logger.Warn("Lock row is held by another instruction", map[string]any{
			"owner": owner,
			"error": err.Error(),
		})
		return errs.ErrAccountLocked
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByOwner retrieves the lock record for an owner
func (r *LockRepository) GetByOwner(ctx context.Context, owner string) (*entity.Lock, error) {
	r.logger.Debug("Getting lock by owner", map[string]any{
		"owner": owner,
	})

	var lockModel model.Lock
	result := r.db.WithContext(ctx).Where("owner = ?", owner).First(&lockModel)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting lock", result.Error, owner)
	}

	lock := r.modelToEntity(&lockModel)

	r.logger.Debug("Lock retrieved successfully", map[string]any{
		"owner":       owner,
		"amount":      entity.FormatAmount(lock.Amount),
		"unlock_time": lock.UnlockTime,
	})

	return lock, nil
}

// Upsert creates or replaces the owner's lock record
func (r *LockRepository) Upsert(ctx context.Context, lock *entity.Lock) error {
	r.logger.Debug("Upserting lock", map[string]any{
		"owner":       lock.Owner,
		"amount":      entity.FormatAmount(lock.Amount),
		"unlock_time": lock.UnlockTime,
	})

	lockModel := r.entityToModel(lock)

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "unlock_time", "updated_at"}),
	}).Create(&lockModel)

	if result.Error != nil {
		return r.handleDatabaseError("upserting lock", result.Error, lock.Owner)
	}

	r.logger.Info("Lock saved successfully", map[string]any{
		"owner":  lock.Owner,
		"amount": entity.FormatAmount(lock.Amount),
	})
	return nil
}
