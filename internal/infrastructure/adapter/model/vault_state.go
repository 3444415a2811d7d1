package model

import (
	"time"
)

// VaultState represents the database model for the vault's aggregate
// bookkeeping. A single row (ID 1) holds the running totals.
type VaultState struct {
	ID          uint      `gorm:"primaryKey"`
	TotalAssets int64     `gorm:"not null"`
	TotalShares int64     `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for VaultState
func (VaultState) TableName() string {
	return "vault_state"
}
