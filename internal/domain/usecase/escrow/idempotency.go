package escrow

import (
	"context"
	"errors"

	"github.com/velabs/govlock/internal/domain/entity"
	errs "github.com/velabs/govlock/internal/domain/error"
	"github.com/velabs/govlock/internal/domain/port/persistence"
)

// checkIdempotency looks up the journal for an already-applied instruction.
// Mobile clients resubmit signed instructions after connectivity drops; a
// replay must return the recorded outcome instead of double-applying.
// Returns the prior event when found.
func checkIdempotency(ctx context.Context, events persistence.EventRepository, instructionID string) (*entity.Event, bool, error) {
	event, err := events.GetByInstructionID(ctx, instructionID)
	if err != nil {
		if errors.Is(err, errs.ErrEventNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return event, true, nil
}
