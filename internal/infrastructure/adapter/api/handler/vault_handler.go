package handler

import (
	"net/http"

	domainerr "github.com/velabs/govlock/internal/domain/error"
	coreport "github.com/velabs/govlock/internal/domain/port/core"
	"github.com/velabs/govlock/internal/domain/port/usecase"
	"github.com/velabs/govlock/internal/infrastructure/adapter/api/dto"
	"github.com/velabs/govlock/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// VaultHandler handles tokenized-vault HTTP requests
type VaultHandler struct {
	vaultUseCase usecase.VaultUseCase
	logger       coreport.Logger
}

// NewVaultHandler creates a new vault handler instance
func NewVaultHandler(vaultUseCase usecase.VaultUseCase, logger coreport.Logger) *VaultHandler {
	return &VaultHandler{
		vaultUseCase: vaultUseCase,
		logger:       logger,
	}
}

// Deposit handles the POST /vault/:caller/deposit endpoint
func (h *VaultHandler) Deposit(c *gin.Context) {
	caller := c.Param("caller")

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid deposit request format", map[string]any{
			"caller": caller,
			"error":  err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	c.Set(middleware.InstructionIDKey, req.InstructionID)

	receiver := req.Receiver
	if receiver == "" {
		receiver = caller
	}

	result, err := h.vaultUseCase.Deposit(c.Request.Context(), usecase.DepositInstruction{
		InstructionID: req.InstructionID,
		Caller:        caller,
		Receiver:      receiver,
		Assets:        req.Assets,
	})
	if err != nil {
		h.logger.Error("Failed to deposit", map[string]any{
			"caller":         caller,
			"receiver":       receiver,
			"instruction_id": req.InstructionID,
			"error":          err.Error(),
		})
		c.JSON(statusFromError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, vaultOperationResponse(result))
}

// Withdraw handles the POST /vault/:caller/withdraw endpoint
func (h *VaultHandler) Withdraw(c *gin.Context) {
	caller := c.Param("caller")

	var req dto.VaultWithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid vault withdraw request format", map[string]any{
			"caller": caller,
			"error":  err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	c.Set(middleware.InstructionIDKey, req.InstructionID)

	owner := req.Owner
	if owner == "" {
		owner = caller
	}
	receiver := req.Receiver
	if receiver == "" {
		receiver = caller
	}

	result, err := h.vaultUseCase.Withdraw(c.Request.Context(), usecase.VaultWithdrawInstruction{
		InstructionID: req.InstructionID,
		Caller:        caller,
		Owner:         owner,
		Receiver:      receiver,
		Assets:        req.Assets,
	})
	if err != nil {
		h.logger.Error("Failed to withdraw from vault", map[string]any{
			"caller":         caller,
			"owner":          owner,
			"receiver":       receiver,
			"instruction_id": req.InstructionID,
			"error":          err.Error(),
		})
		c.JSON(statusFromError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, vaultOperationResponse(result))
}

// GetAccount handles the GET /vault/accounts/:owner endpoint
func (h *VaultHandler) GetAccount(c *gin.Context) {
	owner := c.Param("owner")

	account, err := h.vaultUseCase.GetAccount(c.Request.Context(), owner)
	if err != nil {
		c.JSON(statusFromError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.VaultAccountResponse{
		Owner:      account.Owner,
		Shares:     account.Shares,
		AssetValue: account.AssetValue,
	})
}

// GetState handles the GET /vault endpoint
func (h *VaultHandler) GetState(c *gin.Context) {
	state, err := h.vaultUseCase.GetState(c.Request.Context())
	if err != nil {
		c.JSON(statusFromError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.VaultStateResponse{
		TotalAssets: state.TotalAssets,
		TotalShares: state.TotalShares,
	})
}

// ConvertToShares handles the GET /vault/convert/shares endpoint
func (h *VaultHandler) ConvertToShares(c *gin.Context) {
	assets := c.Query("assets")
	if assets == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Missing required query parameter: assets",
		})
		return
	}

	shares, err := h.vaultUseCase.ConvertToShares(c.Request.Context(), assets)
	if err != nil {
		c.JSON(statusFromError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.ConversionResponse{
		Input:  assets,
		Output: shares,
	})
}

// ConvertToAssets handles the GET /vault/convert/assets endpoint
func (h *VaultHandler) ConvertToAssets(c *gin.Context) {
	shares := c.Query("shares")
	if shares == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Missing required query parameter: shares",
		})
		return
	}

	assets, err := h.vaultUseCase.ConvertToAssets(c.Request.Context(), shares)
	if err != nil {
		c.JSON(statusFromError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.ConversionResponse{
		Input:  shares,
		Output: assets,
	})
}

// vaultOperationResponse converts a vault operation result to its API representation
func vaultOperationResponse(result *usecase.VaultOperationResult) dto.VaultOperationResponse {
	return dto.VaultOperationResponse{
		Caller:       result.Caller,
		Owner:        result.Owner,
		Receiver:     result.Receiver,
		Assets:       result.Assets,
		Shares:       result.Shares,
		ShareBalance: result.ShareBalance,
	}
}
