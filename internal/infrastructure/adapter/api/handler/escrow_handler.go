package handler

import (
	"net/http"
	"time"

	domainerr "github.com/velabs/govlock/internal/domain/error"
	coreport "github.com/velabs/govlock/internal/domain/port/core"
	"github.com/velabs/govlock/internal/domain/port/usecase"
	"github.com/velabs/govlock/internal/infrastructure/adapter/api/dto"
	"github.com/velabs/govlock/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// EscrowHandler handles vote-escrow HTTP requests
type EscrowHandler struct {
	escrowUseCase usecase.EscrowUseCase
	logger        coreport.Logger
}

// NewEscrowHandler creates a new escrow handler instance
func NewEscrowHandler(escrowUseCase usecase.EscrowUseCase, logger coreport.Logger) *EscrowHandler {
	return &EscrowHandler{
		escrowUseCase: escrowUseCase,
		logger:        logger,
	}
}

// CreateLock handles the POST /escrow/:owner/lock endpoint
func (h *EscrowHandler) CreateLock(c *gin.Context) {
	owner := c.Param("owner")

	var req dto.CreateLockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid lock request format", map[string]any{
			"owner": owner,
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	c.Set(middleware.InstructionIDKey, req.InstructionID)

	state, err := h.escrowUseCase.CreateLock(c.Request.Context(), usecase.LockInstruction{
		InstructionID: req.InstructionID,
		Owner:         owner,
		Amount:        req.Amount,
		Duration:      time.Duration(req.DurationSeconds) * time.Second,
	})
	if err != nil {
		h.logger.Error("Failed to create lock", map[string]any{
			"owner":          owner,
			"instruction_id": req.InstructionID,
			"error":          err.Error(),
		})
		c.JSON(statusFromError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, lockResponse(state))
}

// IncreaseAmount handles the POST /escrow/:owner/increase endpoint
func (h *EscrowHandler) IncreaseAmount(c *gin.Context) {
	owner := c.Param("owner")

	var req dto.IncreaseAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid increase request format", map[string]any{
			"owner": owner,
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	c.Set(middleware.InstructionIDKey, req.InstructionID)

	state, err := h.escrowUseCase.IncreaseAmount(c.Request.Context(), usecase.IncreaseInstruction{
		InstructionID: req.InstructionID,
		Owner:         owner,
		Amount:        req.Amount,
	})
	if err != nil {
		h.logger.Error("Failed to increase lock", map[string]any{
			"owner":          owner,
			"instruction_id": req.InstructionID,
			"error":          err.Error(),
		})
		c.JSON(statusFromError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, lockResponse(state))
}

// Withdraw handles the POST /escrow/:owner/withdraw endpoint
func (h *EscrowHandler) Withdraw(c *gin.Context) {
	owner := c.Param("owner")

	var req dto.WithdrawLockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid withdraw request format", map[string]any{
			"owner": owner,
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	c.Set(middleware.InstructionIDKey, req.InstructionID)

	result, err := h.escrowUseCase.Withdraw(c.Request.Context(), usecase.WithdrawInstruction{
		InstructionID: req.InstructionID,
		Owner:         owner,
	})
	if err != nil {
		h.logger.Error("Failed to withdraw lock", map[string]any{
			"owner":          owner,
			"instruction_id": req.InstructionID,
			"error":          err.Error(),
		})
		c.JSON(statusFromError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.WithdrawLockResponse{
		Owner:    result.Owner,
		Returned: result.Returned,
	})
}

// GetLock handles the GET /escrow/:owner endpoint
func (h *EscrowHandler) GetLock(c *gin.Context) {
	owner := c.Param("owner")

	state, err := h.escrowUseCase.GetLock(c.Request.Context(), owner)
	if err != nil {
		c.JSON(statusFromError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, lockResponse(state))
}

// GetVotingPower handles the GET /escrow/:owner/voting-power endpoint.
// The optional "at" query parameter (RFC 3339) evaluates decay at a given
// instant; it defaults to now.
func (h *EscrowHandler) GetVotingPower(c *gin.Context) {
	owner := c.Param("owner")

	var at time.Time
	if atParam := c.Query("at"); atParam != "" {
		parsed, err := time.Parse(time.RFC3339, atParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Invalid 'at' parameter, expected RFC 3339 timestamp",
			})
			return
		}
		at = parsed
	}

	power, err := h.escrowUseCase.GetVotingPower(c.Request.Context(), owner, at)
	if err != nil {
		c.JSON(statusFromError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	if at.IsZero() {
		at = time.Now()
	}

	c.JSON(http.StatusOK, dto.VotingPowerResponse{
		Owner:       owner,
		VotingPower: power,
		At:          at,
	})
}

// lockResponse converts a lock state to its API representation
func lockResponse(state *usecase.LockState) dto.LockResponse {
	return dto.LockResponse{
		Owner:       state.Owner,
		Amount:      state.Amount,
		UnlockTime:  state.UnlockTime,
		VotingPower: state.VotingPower,
	}
}
