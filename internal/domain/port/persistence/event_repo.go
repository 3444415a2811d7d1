package persistence

import (
	"context"

	"github.com/velabs/govlock/internal/domain/entity"
)

// EventRepository is the append-only journal of applied instructions.
type EventRepository interface {
	// Append stores a new journal entry.
	//
	// Possible errors:
	// - ErrDuplicateInstruction: if an entry with the same instruction ID exists
	// - ErrDatabaseConnection: if the database is unreachable
	Append(ctx context.Context, event *entity.Event) error

	// GetByInstructionID retrieves the entry recorded for an instruction.
	// Used for idempotency checking before applying an instruction.
	//
	// Possible errors:
	// - ErrEventNotFound: if no entry with the given instruction ID exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByInstructionID(ctx context.Context, instructionID string) (*entity.Event, error)

	// ListByOwner returns the most recent entries touching an owner's ledger
	// positions, newest first.
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the database is unreachable
	ListByOwner(ctx context.Context, owner string, limit int) ([]*entity.Event, error)
}
