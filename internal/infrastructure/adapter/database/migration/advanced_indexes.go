package migration

import (
	coreport "github.com/velabs/govlock/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes for better performance
func (m *AdvancedIndexManager) CreateAdvancedIndexes() error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	// Composite index for per-owner journal queries ordered by recency
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_ledger_events_owner_id
		ON ledger_events (owner, id DESC)
	`).Error; err != nil {
		m.logger.Error("Failed to create owner/id composite index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Partial index for active locks, expired and withdrawn rows are skipped
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_locks_active
		ON locks (owner, unlock_time)
		WHERE amount > 0
	`).Error; err != nil {
		m.logger.Error("Failed to create active locks partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Kind index supports per-ledger journal scans
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_ledger_events_kind
		ON ledger_events (kind)
	`).Error; err != nil {
		m.logger.Error("Failed to create index on kind", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// BRIN index for created_at (more efficient for append-only temporal data)
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_ledger_events_created_at_brin
		ON ledger_events USING BRIN (created_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on created_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL performance tweaks
func (m *AdvancedIndexManager) CreatePerformanceTweaks() error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Lower fillfactor on hot-update tables to reduce page splits
	if err := m.db.Exec(`
		ALTER TABLE locks SET (fillfactor = 90)
	`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for locks table", map[string]any{
			"error": err.Error(),
		})
		// Not critical
	}

	if err := m.db.Exec(`
		ALTER TABLE token_balances SET (fillfactor = 90)
	`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for token_balances table", map[string]any{
			"error": err.Error(),
		})
		// Not critical
	}

	// Better query planning for the journal's owner column
	if err := m.db.Exec(`
		ALTER TABLE ledger_events ALTER COLUMN owner SET STATISTICS 1000
	`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for owner", map[string]any{
			"error": err.Error(),
		})
		// Not critical
	}

	m.logger.Info("PostgreSQL performance tweaks applied successfully", nil)
	return nil
}
