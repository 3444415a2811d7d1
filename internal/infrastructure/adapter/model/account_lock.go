package model

import (
	"time"
)

// AccountLock represents a lock on an account key for instruction processing
type AccountLock struct {
	Key       string    `gorm:"primaryKey;size:128"`
	LockedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"` // Standard GORM timestamp
	UpdatedAt time.Time `gorm:"not null"` // Standard GORM timestamp
}

// TableName specifies the table name for AccountLock
func (AccountLock) TableName() string {
	return "account_locks"
}
