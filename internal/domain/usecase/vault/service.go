package vault

import (
	"context"
	"errors"
	"time"

	"github.com/velabs/govlock/internal/domain/entity"
	errs "github.com/velabs/govlock/internal/domain/error"
	coreport "github.com/velabs/govlock/internal/domain/port/core"
	"github.com/velabs/govlock/internal/domain/port/persistence"
	"github.com/velabs/govlock/internal/domain/port/usecase"
	"github.com/velabs/govlock/internal/domain/usecase/sequencer"
)

// SerializationKey is the single sequencer key shared by every vault
// mutation. Conversions read the global exchange rate, so per-account
// serialization is not enough: all deposits and withdrawals must be mutually
// exclusive with each other.
const SerializationKey = "vault"

// Service implements the tokenized vault ledger: deposits mint shares at the
// current exchange rate, withdrawals burn them, and the rate itself is only
// ever derived from the totals, never cached per account.
type Service struct {
	uow          persistence.UnitOfWork
	vaultRepo    persistence.VaultRepository
	eventRepo    persistence.EventRepository
	accountLocks persistence.AccountLockRepository
	seq          *sequencer.Sequencer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	lockTimeout  time.Duration
}

// NewService creates the vault ledger service.
func NewService(
	uow persistence.UnitOfWork,
	vaultRepo persistence.VaultRepository,
	eventRepo persistence.EventRepository,
	accountLocks persistence.AccountLockRepository,
	seq *sequencer.Sequencer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	lockTimeout time.Duration,
) *Service {
	return &Service{
		uow:          uow,
		vaultRepo:    vaultRepo,
		eventRepo:    eventRepo,
		accountLocks: accountLocks,
		seq:          seq,
		timeProvider: timeProvider,
		logger:       logger,
		lockTimeout:  lockTimeout,
	}
}

var _ usecase.VaultUseCase = (*Service)(nil)

// withVaultLock serializes fn against every other vault mutation, in-process
// through the sequencer and cross-instance through the singleton lock row.
func (s *Service) withVaultLock(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.seq.Do(ctx, SerializationKey, func(ctx context.Context) error {
		if err := s.accountLocks.AcquireLock(ctx, SerializationKey, s.lockTimeout); err != nil {
			return err
		}
		defer func() {
			if releaseErr := s.accountLocks.ReleaseLock(ctx, SerializationKey); releaseErr != nil {
				s.logger.Warn("Failed to release vault lock", map[string]any{
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

// getOrCreateAccount loads the receiver's share account, starting a zeroed
// one on first touch.
func getOrCreateAccount(ctx context.Context, repo persistence.VaultRepository, owner string, now time.Time) (*entity.VaultAccount, error) {
	account, err := repo.GetAccount(ctx, owner)
	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			return &entity.VaultAccount{Owner: owner, CreatedAt: now, UpdatedAt: now}, nil
		}
		return nil, err
	}
	return account, nil
}

// priorResult rebuilds the response for a replayed instruction from its
// journal entry.
func priorResult(event *entity.Event) *usecase.VaultOperationResult {
	return &usecase.VaultOperationResult{
		Caller:       event.Actor,
		Owner:        event.Owner,
		Receiver:     event.Receiver,
		Assets:       entity.FormatAmount(event.Amount),
		Shares:       entity.FormatAmount(event.Shares),
		ShareBalance: entity.FormatAmount(event.ResultAmount),
	}
}
