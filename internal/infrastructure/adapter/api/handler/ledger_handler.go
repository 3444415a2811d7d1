package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/velabs/govlock/internal/domain/error"
	coreport "github.com/velabs/govlock/internal/domain/port/core"
	"github.com/velabs/govlock/internal/domain/port/usecase"
	"github.com/velabs/govlock/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// LedgerHandler handles token-balance and journal-history HTTP requests
type LedgerHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewLedgerHandler creates a new ledger handler instance
func NewLedgerHandler(ledgerUseCase usecase.LedgerUseCase, logger coreport.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledgerUseCase: ledgerUseCase,
		logger:        logger,
	}
}

// GetBalance handles the GET /accounts/:owner/balance endpoint
func (h *LedgerHandler) GetBalance(c *gin.Context) {
	owner := c.Param("owner")

	view, err := h.ledgerUseCase.GetBalance(c.Request.Context(), owner)
	if err != nil {
		h.logger.Error("Failed to get balance", map[string]any{
			"owner": owner,
			"error": err.Error(),
		})
		c.JSON(statusFromError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		Account: view.Account,
		Balance: view.Balance,
	})
}

// GetHistory handles the GET /accounts/:owner/history endpoint. The optional
// "limit" query parameter caps the number of entries returned.
func (h *LedgerHandler) GetHistory(c *gin.Context) {
	owner := c.Param("owner")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Invalid limit parameter: must be a positive integer",
			})
			return
		}
		limit = parsed
	}

	entries, err := h.ledgerUseCase.GetHistory(c.Request.Context(), owner, limit)
	if err != nil {
		h.logger.Error("Failed to get history", map[string]any{
			"owner": owner,
			"limit": limit,
			"error": err.Error(),
		})
		c.JSON(statusFromError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	response := dto.HistoryResponse{
		Owner:   owner,
		Entries: make([]dto.HistoryEntryResponse, 0, len(entries)),
	}
	for _, entry := range entries {
		response.Entries = append(response.Entries, dto.HistoryEntryResponse{
			ID:            entry.ID,
			InstructionID: entry.InstructionID,
			Kind:          entry.Kind,
			Actor:         entry.Actor,
			Owner:         entry.Owner,
			Receiver:      entry.Receiver,
			Amount:        entry.Amount,
			Shares:        entry.Shares,
			ResultAmount:  entry.ResultAmount,
			UnlockTime:    entry.UnlockTime,
			CreatedAt:     entry.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, response)
}
