package escrow

import (
	"context"
	"time"

	"github.com/velabs/govlock/internal/domain/entity"
	coreport "github.com/velabs/govlock/internal/domain/port/core"
	"github.com/velabs/govlock/internal/domain/port/persistence"
	"github.com/velabs/govlock/internal/domain/port/usecase"
	"github.com/velabs/govlock/internal/domain/usecase/sequencer"
)

// Service implements the vote-escrow lock ledger. Mutations are serialized
// per owner by the sequencer and a cross-instance account lock, and applied
// atomically through the unit of work: validate, mutate the lock row, move
// the principal, append the journal entry, commit.
type Service struct {
	uow          persistence.UnitOfWork
	lockRepo     persistence.LockRepository
	eventRepo    persistence.EventRepository
	accountLocks persistence.AccountLockRepository
	seq          *sequencer.Sequencer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	validator    *InstructionValidator
	lockTimeout  time.Duration
}

// NewService creates the escrow ledger service.
func NewService(
	uow persistence.UnitOfWork,
	lockRepo persistence.LockRepository,
	eventRepo persistence.EventRepository,
	accountLocks persistence.AccountLockRepository,
	seq *sequencer.Sequencer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	lockTimeout time.Duration,
) *Service {
	return &Service{
		uow:          uow,
		lockRepo:     lockRepo,
		eventRepo:    eventRepo,
		accountLocks: accountLocks,
		seq:          seq,
		timeProvider: timeProvider,
		logger:       logger,
		validator:    NewInstructionValidator(),
		lockTimeout:  lockTimeout,
	}
}

var _ usecase.EscrowUseCase = (*Service)(nil)

// lockState formats a lock for the read surface, deriving voting power at
// the given instant.
func lockState(lock *entity.Lock, now time.Time) *usecase.LockState {
	return &usecase.LockState{
		Owner:       lock.Owner,
		Amount:      entity.FormatAmount(lock.Amount),
		UnlockTime:  lock.UnlockTime,
		VotingPower: lock.VotingPower(now).String(),
	}
}

// withAccountLock runs fn behind the owner-keyed sequencer queue and the
// database account lock, so the mutation is exclusive both in-process and
// across instances.
func (s *Service) withAccountLock(ctx context.Context, owner string, fn func(ctx context.Context) error) error {
	return s.seq.Do(ctx, owner, func(ctx context.Context) error {
		if err := s.accountLocks.AcquireLock(ctx, owner, s.lockTimeout); err != nil {
			return err
		}
		defer func() {
			if releaseErr := s.accountLocks.ReleaseLock(ctx, owner); releaseErr != nil {
				s.logger.Warn("Failed to release account lock", map[string]any{
					"owner": owner,
					"error": releaseErr.Error(),
				})
			}
		}()

		return fn(ctx)
	})
}

// inTransaction wraps fn in a unit-of-work transaction with rollback on error.
func (s *Service) inTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(txCtx); err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Rollback failed", map[string]any{"error": rbErr.Error()})
		}
		return err
	}

	return s.uow.Commit(txCtx)
}
