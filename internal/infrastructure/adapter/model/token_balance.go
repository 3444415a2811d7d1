package model

import (
	"time"
)

// TokenBalance represents the database model for token account balances.
// System holdings (escrow, vault) live alongside user accounts so every
// transfer stays double-entry.
type TokenBalance struct {
	Account   string    `gorm:"primaryKey;size:128"`
	Balance   int64     `gorm:"not null"` // Base units
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for TokenBalance
func (TokenBalance) TableName() string {
	return "token_balances"
}
