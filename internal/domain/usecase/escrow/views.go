package escrow

import (
	"context"
	"time"

	errs "github.com/velabs/govlock/internal/domain/error"
	"github.com/velabs/govlock/internal/domain/port/usecase"
)

// GetLock returns the owner's lock with voting power derived at the current
// instant. Pure read; no serialization needed.
func (s *Service) GetLock(ctx context.Context, owner string) (*usecase.LockState, error) {
	if owner == "" {
		return nil, errs.ErrInvalidAccount
	}

	lock, err := s.lockRepo.GetByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	return lockState(lock, s.timeProvider.Now()), nil
}

// GetVotingPower derives voting power at an explicit instant. The zero time
// means "now". An owner with no lock record simply has zero power; reads
// never fail on absence.
func (s *Service) GetVotingPower(ctx context.Context, owner string, at time.Time) (string, error) {
	if owner == "" {
		return "", errs.ErrInvalidAccount
	}
	if at.IsZero() {
		at = s.timeProvider.Now()
	}

	lock, err := s.lockRepo.GetByOwner(ctx, owner)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return "0", nil
		}
		return "", err
	}

	return lock.VotingPower(at).String(), nil
}
