package model

import (
	"time"
)

// VaultAccount represents the database model for per-owner share balances
type VaultAccount struct {
	Owner     string    `gorm:"primaryKey;size:128"`
	Shares    int64     `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for VaultAccount
func (VaultAccount) TableName() string {
	return "vault_accounts"
}
