package vault

import (
	"context"
	"testing"
	"time"

	"github.com/velabs/govlock/internal/domain/entity"
	errs "github.com/velabs/govlock/internal/domain/error"
	"github.com/velabs/govlock/internal/domain/port/usecase"
	"github.com/velabs/govlock/internal/domain/usecase/sequencer"
	mcore "github.com/velabs/govlock/mocks/port/core"
	mpers "github.com/velabs/govlock/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// contextKey mirrors the transactional context key used by the unit of work
type contextKey string

const txKey contextKey = "tx"

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type vaultMocks struct {
	uow          *mpers.MockUnitOfWork
	vaultRepo    *mpers.MockVaultRepository
	eventRepo    *mpers.MockEventRepository
	accountLocks *mpers.MockAccountLockRepository
	txVaults     *mpers.MockVaultRepository
	txBalances   *mpers.MockBalanceRepository
	txEvents     *mpers.MockEventRepository
	timeProvider *mcore.MockTimeProvider
	logger       *mcore.MockLogger
}

func newVaultService(t *testing.T) (*Service, *vaultMocks) {
	t.Helper()

	m := &vaultMocks{
		uow:          new(mpers.MockUnitOfWork),
		vaultRepo:    new(mpers.MockVaultRepository),
		eventRepo:    new(mpers.MockEventRepository),
		accountLocks: new(mpers.MockAccountLockRepository),
		txVaults:     new(mpers.MockVaultRepository),
		txBalances:   new(mpers.MockBalanceRepository),
		txEvents:     new(mpers.MockEventRepository),
		timeProvider: new(mcore.MockTimeProvider),
		logger:       new(mcore.MockLogger),
	}

	m.logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	m.logger.On("Info", mock.Anything, mock.Anything).Maybe()
	m.logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	m.logger.On("Error", mock.Anything, mock.Anything).Maybe()

	seq := sequencer.New(m.logger)
	t.Cleanup(seq.Shutdown)

	service := NewService(
		m.uow,
		m.vaultRepo,
		m.eventRepo,
		m.accountLocks,
		seq,
		m.timeProvider,
		m.logger,
		5*time.Second,
	)
	return service, m
}

// expectVaultLock wires the singleton-key acquire/release pair
func (m *vaultMocks) expectVaultLock() {
	m.accountLocks.On("AcquireLock", mock.Anything, SerializationKey, 5*time.Second).Return(nil)
	m.accountLocks.On("ReleaseLock", mock.Anything, SerializationKey).Return(nil)
}

func (m *vaultMocks) expectTransaction(ctx context.Context) context.Context {
	txCtx := context.WithValue(ctx, txKey, "test-tx")
	m.uow.On("Begin", mock.Anything).Return(txCtx, nil)
	m.uow.On("Commit", txCtx).Return(nil)
	m.uow.On("VaultRepository", txCtx).Return(m.txVaults)
	m.uow.On("BalanceRepository", txCtx).Return(m.txBalances)
	m.uow.On("EventRepository", txCtx).Return(m.txEvents)
	return txCtx
}

func (m *vaultMocks) expectRollbackTransaction(ctx context.Context) context.Context {
	txCtx := context.WithValue(ctx, txKey, "test-tx")
	m.uow.On("Begin", mock.Anything).Return(txCtx, nil)
	m.uow.On("Rollback", txCtx).Return(nil)
	m.uow.On("VaultRepository", txCtx).Return(m.txVaults)
	m.uow.On("BalanceRepository", txCtx).Return(m.txBalances)
	m.uow.On("EventRepository", txCtx).Return(m.txEvents)
	return txCtx
}

func TestDeposit(t *testing.T) {
	ctx := context.Background()
	instr := usecase.DepositInstruction{
		InstructionID: "instr-10",
		Caller:        "alice",
		Receiver:      "alice",
		Assets:        "100",
	}
	assets := int64(100 * 100000000)

	t.Run("Genesis deposit mints one to one", func(t *testing.T) {
		service, m := newVaultService(t)
		m.expectVaultLock()
		txCtx := m.expectTransaction(ctx)

		m.eventRepo.On("GetByInstructionID", mock.Anything, "instr-10").Return(nil, errs.ErrEventNotFound)
		m.timeProvider.On("Now").Return(testNow)

		m.txVaults.On("GetState", txCtx).Return(&entity.Vault{}, nil)
		m.txVaults.On("GetAccount", txCtx, "alice").Return(nil, errs.ErrAccountNotFound)
		m.txVaults.On("SaveState", txCtx, mock.MatchedBy(func(v *entity.Vault) bool {
			return v.TotalAssets == assets && v.TotalShares == assets
		})).Return(nil)
		m.txVaults.On("UpsertAccount", txCtx, mock.MatchedBy(func(a *entity.VaultAccount) bool {
			return a.Owner == "alice" && a.Shares == assets
		})).Return(nil)
		m.txBalances.On("Transfer", txCtx, "alice", entity.VaultAccountID, assets).Return(nil)
		m.txEvents.On("Append", txCtx, mock.MatchedBy(func(event *entity.Event) bool {
			return event.Kind == entity.EventVaultDeposit &&
				event.Amount == assets &&
				event.Shares == assets
		})).Return(nil)

		result, err := service.Deposit(ctx, instr)
		assert.NoError(t, err)
		assert.Equal(t, "100.00000000", result.Assets)
		assert.Equal(t, "100.00000000", result.Shares)
		assert.Equal(t, "100.00000000", result.ShareBalance)

		m.txVaults.AssertExpectations(t)
		m.txBalances.AssertExpectations(t)
		m.txEvents.AssertExpectations(t)
	})

	t.Run("Mints at the current rate for a third party", func(t *testing.T) {
		service, m := newVaultService(t)
		m.expectVaultLock()
		txCtx := m.expectTransaction(ctx)

		// 1 share is worth 2 assets
		state := &entity.Vault{TotalAssets: 2 * assets, TotalShares: assets}
		receiverAccount := &entity.VaultAccount{Owner: "bob", Shares: 0}

		m.eventRepo.On("GetByInstructionID", mock.Anything, "instr-10").Return(nil, errs.ErrEventNotFound)
		m.timeProvider.On("Now").Return(testNow)

		m.txVaults.On("GetState", txCtx).Return(state, nil)
		m.txVaults.On("GetAccount", txCtx, "bob").Return(receiverAccount, nil)
		m.txVaults.On("SaveState", txCtx, mock.Anything).Return(nil)
		m.txVaults.On("UpsertAccount", txCtx, mock.MatchedBy(func(a *entity.VaultAccount) bool {
			return a.Owner == "bob" && a.Shares == assets/2
		})).Return(nil)
		m.txBalances.On("Transfer", txCtx, "alice", entity.VaultAccountID, assets).Return(nil)
		m.txEvents.On("Append", txCtx, mock.MatchedBy(func(event *entity.Event) bool {
			return event.Actor == "alice" && event.Owner == "bob" && event.Shares == assets/2
		})).Return(nil)

		toBob := instr
		toBob.Receiver = "bob"

		result, err := service.Deposit(ctx, toBob)
		assert.NoError(t, err)
		assert.Equal(t, "alice", result.Caller)
		assert.Equal(t, "bob", result.Receiver)
		assert.Equal(t, "50.00000000", result.Shares)

		m.txVaults.AssertExpectations(t)
	})

	t.Run("Replayed deposit returns the recorded outcome", func(t *testing.T) {
		service, m := newVaultService(t)
		m.expectVaultLock()

		prior := &entity.Event{
			InstructionID: "instr-10",
			Kind:          entity.EventVaultDeposit,
			Actor:         "alice",
			Owner:         "alice",
			Receiver:      "alice",
			Amount:        assets,
			Shares:        assets,
			ResultAmount:  assets,
		}

		m.eventRepo.On("GetByInstructionID", mock.Anything, "instr-10").Return(prior, nil)

		result, err := service.Deposit(ctx, instr)
		assert.NoError(t, err)
		assert.Equal(t, "100.00000000", result.Shares)

		m.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Caller cannot cover the deposit", func(t *testing.T) {
		service, m := newVaultService(t)
		m.expectVaultLock()
		txCtx := m.expectRollbackTransaction(ctx)

		m.eventRepo.On("GetByInstructionID", mock.Anything, "instr-10").Return(nil, errs.ErrEventNotFound)
		m.timeProvider.On("Now").Return(testNow)

		m.txVaults.On("GetState", txCtx).Return(&entity.Vault{}, nil)
		m.txVaults.On("GetAccount", txCtx, "alice").Return(nil, errs.ErrAccountNotFound)
		m.txVaults.On("SaveState", txCtx, mock.Anything).Return(nil)
		m.txVaults.On("UpsertAccount", txCtx, mock.Anything).Return(nil)
		m.txBalances.On("Transfer", txCtx, "alice", entity.VaultAccountID, assets).
			Return(errs.NewInsufficientBalanceError("alice", assets, 0))

		_, err := service.Deposit(ctx, instr)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)

		m.uow.AssertExpectations(t)
		m.txEvents.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("Validation failures", func(t *testing.T) {
		testCases := []struct {
			name      string
			instr     usecase.DepositInstruction
			errorType error
		}{
			{
				name:      "Empty instruction ID",
				instr:     usecase.DepositInstruction{Caller: "alice", Receiver: "alice", Assets: "100"},
				errorType: errs.ErrInvalidInstructionID,
			},
			{
				name:      "Empty receiver",
				instr:     usecase.DepositInstruction{InstructionID: "instr-10", Caller: "alice", Assets: "100"},
				errorType: errs.ErrInvalidAccount,
			},
			{
				name:      "Zero assets",
				instr:     usecase.DepositInstruction{InstructionID: "instr-10", Caller: "alice", Receiver: "alice", Assets: "0"},
				errorType: errs.ErrZeroAssets,
			},
			{
				name:      "Negative assets",
				instr:     usecase.DepositInstruction{InstructionID: "instr-10", Caller: "alice", Receiver: "alice", Assets: "-5"},
				errorType: errs.ErrNegativeAmount,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				service, m := newVaultService(t)

				_, err := service.Deposit(ctx, tc.instr)
				assert.ErrorIs(t, err, tc.errorType)

				m.accountLocks.AssertNotCalled(t, "AcquireLock", mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})
}
