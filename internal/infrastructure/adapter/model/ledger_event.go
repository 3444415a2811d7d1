package model

import (
	"time"
)

// LedgerEvent represents the database model for the append-only journal.
// The unique index on InstructionID is what makes replayed instructions
// detectable.
type LedgerEvent struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	InstructionID string    `gorm:"uniqueIndex;not null;size:255"`
	Kind          string    `gorm:"not null;size:50;index"`
	Actor         string    `gorm:"not null;size:128"`
	Owner         string    `gorm:"not null;size:128;index"`
	Receiver      string    `gorm:"size:128"`
	Amount        int64     `gorm:"not null"`
	Shares        int64     `gorm:"not null"`
	ResultAmount  int64     `gorm:"not null"`
	UnlockTime    *time.Time
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for LedgerEvent
func (LedgerEvent) TableName() string {
	return "ledger_events"
}
