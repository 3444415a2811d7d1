package ledger

import (
	"context"

	"github.com/velabs/govlock/internal/domain/entity"
	errs "github.com/velabs/govlock/internal/domain/error"
	coreport "github.com/velabs/govlock/internal/domain/port/core"
	"github.com/velabs/govlock/internal/domain/port/persistence"
	"github.com/velabs/govlock/internal/domain/port/usecase"
)

// Service implements the ledger read surface. Pure reads; no serialization
// or transactional wrapping needed.
type Service struct {
	balanceRepo  persistence.BalanceRepository
	eventRepo    persistence.EventRepository
	logger       coreport.Logger
	defaultLimit int
}

// NewService creates the ledger read service. defaultLimit bounds history
// queries that omit an explicit limit.
func NewService(
	balanceRepo persistence.BalanceRepository,
	eventRepo persistence.EventRepository,
	logger coreport.Logger,
	defaultLimit int,
) *Service {
	if defaultLimit <= 0 {
		defaultLimit = 50
	}
	return &Service{
		balanceRepo:  balanceRepo,
		eventRepo:    eventRepo,
		logger:       logger,
		defaultLimit: defaultLimit,
	}
}

// GetBalance returns an account's token balance.
func (s *Service) GetBalance(ctx context.Context, account string) (*usecase.BalanceView, error) {
	if account == "" {
		return nil, errs.ErrInvalidAccount
	}

	balance, err := s.balanceRepo.GetBalance(ctx, account)
	if err != nil {
		return nil, err
	}

	return &usecase.BalanceView{
		Account: account,
		Balance: entity.FormatAmount(balance),
	}, nil
}

// GetHistory returns an owner's journal entries, newest first. An owner with
// no recorded activity gets an empty list, not an error.
func (s *Service) GetHistory(ctx context.Context, owner string, limit int) ([]*usecase.HistoryEntry, error) {
	if owner == "" {
		return nil, errs.ErrInvalidAccount
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}

	events, err := s.eventRepo.ListByOwner(ctx, owner, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]*usecase.HistoryEntry, 0, len(events))
	for _, ev := range events {
		entries = append(entries, historyEntry(ev))
	}
	return entries, nil
}

func historyEntry(ev *entity.Event) *usecase.HistoryEntry {
	entry := &usecase.HistoryEntry{
		ID:            ev.ID,
		InstructionID: ev.InstructionID,
		Kind:          string(ev.Kind),
		Actor:         ev.Actor,
		Owner:         ev.Owner,
		Receiver:      ev.Receiver,
		Amount:        entity.FormatAmount(ev.Amount),
		ResultAmount:  entity.FormatAmount(ev.ResultAmount),
		UnlockTime:    ev.UnlockTime,
		CreatedAt:     ev.CreatedAt,
	}
	if ev.IsVaultEvent() {
		entry.Shares = entity.FormatAmount(ev.Shares)
	}
	return entry
}
