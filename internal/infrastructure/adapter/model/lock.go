package model

import (
	"time"
)

// Lock is the database model for vote-escrow locks, one row per owner.
// Withdrawn locks keep their row with zeroed amount and unlock time.
type Lock struct {
	Owner      string     `gorm:"primaryKey;size:128"`
	Amount     int64      `gorm:"not null"` // Base units
	UnlockTime *time.Time `gorm:"index"`    // NULL when nothing is locked
	CreatedAt  time.Time  `gorm:"not null"`
	UpdatedAt  time.Time  `gorm:"not null"`
}

// TableName specifies the table name for Lock
func (Lock) TableName() string {
	return "locks"
}
