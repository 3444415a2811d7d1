package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/velabs/govlock/internal/domain/entity"
	errs "github.com/velabs/govlock/internal/domain/error"
	coreport "github.com/velabs/govlock/internal/domain/port/core"
	"github.com/velabs/govlock/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// EventRepository implements the append-only journal using GORM
type EventRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewEventRepository creates a new EventRepository instance
func NewEventRepository(db *gorm.DB, logger coreport.Logger) *EventRepository {
	return &EventRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a journal entry to a database model
func (r *EventRepository) entityToModel(event *entity.Event) model.LedgerEvent {
	return model.LedgerEvent{
		InstructionID: event.InstructionID,
		Kind:          string(event.Kind),
		Actor:         event.Actor,
		Owner:         event.Owner,
		Receiver:      event.Receiver,
		Amount:        event.Amount,
		Shares:        event.Shares,
		ResultAmount:  event.ResultAmount,
		UnlockTime:    event.UnlockTime,
		CreatedAt:     event.CreatedAt,
	}
}

// modelToEntity converts a database model to a journal entry
func (r *EventRepository) modelToEntity(eventModel *model.LedgerEvent) *entity.Event {
	return &entity.Event{
		ID:            eventModel.ID,
		InstructionID: eventModel.InstructionID,
		Kind:          entity.EventKind(eventModel.Kind),
		Actor:         eventModel.Actor,
		Owner:         eventModel.Owner,
		Receiver:      eventModel.Receiver,
		Amount:        eventModel.Amount,
		Shares:        eventModel.Shares,
		ResultAmount:  eventModel.ResultAmount,
		UnlockTime:    eventModel.UnlockTime,
		CreatedAt:     eventModel.CreatedAt,
	}
}

// Append stores a new journal entry
func (r *EventRepository) Append(ctx context.Context, event *entity.Event) error {
	r.logger.Debug("Appending journal entry", map[string]any{
		"instruction_id": event.InstructionID,
		"kind":           string(event.Kind),
		"owner":          event.Owner,
	})

	eventModel := r.entityToModel(event)

	result := r.db.WithContext(ctx).Create(&eventModel)

	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate instruction detected", map[string]any{
				"instruction_id": event.InstructionID,
				"owner":          event.Owner,
			})
			return errs.ErrDuplicateInstruction
		}

		r.logger.Error("Failed to append journal entry", map[string]any{
			"instruction_id": event.InstructionID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	event.ID = eventModel.ID

	r.logger.Info("Journal entry appended", map[string]any{
		"instruction_id": event.InstructionID,
		"kind":           string(event.Kind),
		"owner":          event.Owner,
	})
	return nil
}

// GetByInstructionID retrieves the entry recorded for an instruction
func (r *EventRepository) GetByInstructionID(ctx context.Context, instructionID string) (*entity.Event, error) {
	var eventModel model.LedgerEvent
	result := r.db.WithContext(ctx).Where("instruction_id = ?", instructionID).First(&eventModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrEventNotFound
		}
		r.logger.Error("Database error when getting journal entry", map[string]any{
			"instruction_id": instructionID,
			"error":          result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&eventModel), nil
}

// ListByOwner returns the most recent entries for an owner, newest first
func (r *EventRepository) ListByOwner(ctx context.Context, owner string, limit int) ([]*entity.Event, error) {
	if limit <= 0 {
		limit = 50
	}

	var eventModels []model.LedgerEvent
	result := r.db.WithContext(ctx).
		Where("owner = ?", owner).
		Order("id DESC").
		Limit(limit).
		Find(&eventModels)

	if result.Error != nil {
		r.logger.Error("Database error when listing journal entries", map[string]any{
			"owner": owner,
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for i := range eventModels {
		events = append(events, r.modelToEntity(&eventModels[i]))
	}

	return events, nil
}
