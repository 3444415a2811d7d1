package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	errs "github.com/velabs/govlock/internal/domain/error"
	coreport "github.com/velabs/govlock/internal/domain/port/core"
	"github.com/velabs/govlock/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// AccountLockRepository implements account locking functionality using GORM
type AccountLockRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountLockRepository creates a new AccountLockRepository instance
func NewAccountLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountLockRepository {
	return &AccountLockRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// AcquireLock attempts to acquire a lock on the key for instruction
// processing. The upsert takes over expired locks in the same statement, so
// a crashed holder never blocks the key past the expiry.
func (r *AccountLockRepository) AcquireLock(ctx context.Context, key string, duration time.Duration) error {
	r.logger.Debug("Attempting to acquire account lock", map[string]any{
		"key":      key,
		"duration": duration.String(),
	})

	now := r.timeProvider.Now()
	expiresAt := now.Add(duration)

	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO account_locks (key, locked_at, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (key) DO UPDATE
		SET locked_at = EXCLUDED.locked_at,
		    expires_at = EXCLUDED.expires_at,
		    updated_at = EXCLUDED.updated_at
		WHERE account_locks.expires_at <= ?`,
		key, now, expiresAt, now, now, // INSERT values
		now, // WHERE condition for the ON CONFLICT clause
	)

	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Account is already locked", map[string]any{
				"key": key,
			})
			return errs.ErrAccountLocked
		}

		if isContextError(result.Error) {
			r.logger.Warn("Context timeout acquiring account lock", map[string]any{
				"key":   key,
				"error": result.Error.Error(),
			})
			return fmt.Errorf("lock acquisition timeout: %w", result.Error)
		}

		r.logger.Error("Database error acquiring account lock", map[string]any{
			"key":   key,
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	// The conflict clause is a no-op when the existing lock is still live,
	// which surfaces as zero affected rows rather than an error
	if result.RowsAffected == 0 {
		r.logger.Warn("Account is already locked", map[string]any{
			"key": key,
		})
		return errs.ErrAccountLocked
	}

	r.logger.Info("Account lock acquired", map[string]any{
		"key":        key,
		"locked_at":  now,
		"expires_at": expiresAt,
	})
	return nil
}

// ReleaseLock releases a previously acquired lock. Releasing an absent or
// expired lock is not an error.
func (r *AccountLockRepository) ReleaseLock(ctx context.Context, key string) error {
	r.logger.Debug("Releasing account lock", map[string]any{
		"key": key,
	})

	result := r.db.WithContext(ctx).Where("key = ?", key).Delete(&model.AccountLock{})

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil
		}

		// Context errors are not critical here, the lock expires on its own
		if isContextError(result.Error) {
			r.logger.Warn("Context timeout releasing account lock, lock will expire automatically", map[string]any{
				"key":   key,
				"error": result.Error.Error(),
			})
			return nil
		}

		r.logger.Error("Failed to release account lock", map[string]any{
			"key":   key,
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Account lock released", map[string]any{
			"key": key,
		})
	}

	return nil
}

// CleanupExpired removes all expired locks from the database
func (r *AccountLockRepository) CleanupExpired(ctx context.Context) error {
	now := r.timeProvider.Now()

	r.logger.Debug("Cleaning up expired account locks", map[string]any{
		"current_time": now,
	})

	result := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&model.AccountLock{})

	if result.Error != nil {
		r.logger.Error("Failed to clean up expired account locks", map[string]any{
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	r.logger.Info("Expired account locks cleanup completed", map[string]any{
		"locks_removed": result.RowsAffected,
	})
	return nil
}
