package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	domainerr "github.com/velabs/govlock/internal/domain/error"
	"github.com/velabs/govlock/internal/domain/port/usecase"
	"github.com/velabs/govlock/internal/infrastructure/adapter/api/dto"
	"github.com/velabs/govlock/internal/infrastructure/adapter/logger"
	mockusecase "github.com/velabs/govlock/mocks/port/usecase"
)

func setupVaultRouter(t *testing.T) (*mockusecase.MockVaultUseCase, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	uc := mockusecase.NewMockVaultUseCase(t)
	h := NewVaultHandler(uc, logger.NewNoopLogger())

	router := gin.New()
	router.GET("/vault", h.GetState)
	router.GET("/vault/accounts/:owner", h.GetAccount)
	router.GET("/vault/convert/shares", h.ConvertToShares)
	router.GET("/vault/convert/assets", h.ConvertToAssets)
	router.POST("/vault/:caller/deposit", h.Deposit)
	router.POST("/vault/:caller/withdraw", h.Withdraw)

	return uc, router
}

func TestVaultHandlerDeposit(t *testing.T) {
	t.Run("returns the minted shares", func(t *testing.T) {
		uc, router := setupVaultRouter(t)

		uc.On("Deposit", mock.Anything, usecase.DepositInstruction{
			InstructionID: "instr-1",
			Caller:        "alice",
			Receiver:      "bob",
			Assets:        "100",
		}).Return(&usecase.VaultOperationResult{
			Caller:       "alice",
			Owner:        "bob",
			Receiver:     "bob",
			Assets:       "100.00000000",
			Shares:       "100.00000000",
			ShareBalance: "100.00000000",
		}, nil)

		recorder := postJSON(t, router, "/vault/alice/deposit", dto.DepositRequest{
			InstructionID: "instr-1",
			Receiver:      "bob",
			Assets:        "100",
		})

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp dto.VaultOperationResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "100.00000000", resp.Shares)
		assert.Equal(t, "bob", resp.Receiver)
	})

	t.Run("receiver defaults to the caller", func(t *testing.T) {
		uc, router := setupVaultRouter(t)

		uc.On("Deposit", mock.Anything, usecase.DepositInstruction{
			InstructionID: "instr-1",
			Caller:        "alice",
			Receiver:      "alice",
			Assets:        "100",
		}).Return(&usecase.VaultOperationResult{Caller: "alice", Owner: "alice", Receiver: "alice"}, nil)

		recorder := postJSON(t, router, "/vault/alice/deposit", dto.DepositRequest{
			InstructionID: "instr-1",
			Assets:        "100",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("zero assets map to 400", func(t *testing.T) {
		uc, router := setupVaultRouter(t)

		uc.On("Deposit", mock.Anything, mock.Anything).Return(nil, domainerr.ErrZeroAssets)

		recorder := postJSON(t, router, "/vault/alice/deposit", dto.DepositRequest{
			InstructionID: "instr-1",
			Assets:        "0",
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("missing instruction id fails binding", func(t *testing.T) {
		uc, router := setupVaultRouter(t)

		recorder := postJSON(t, router, "/vault/alice/deposit", map[string]any{
			"assets": "100",
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		uc.AssertNotCalled(t, "Deposit")
	})
}

func TestVaultHandlerWithdraw(t *testing.T) {
	t.Run("owner and receiver default to the caller", func(t *testing.T) {
		uc, router := setupVaultRouter(t)

		uc.On("Withdraw", mock.Anything, usecase.VaultWithdrawInstruction{
			InstructionID: "instr-2",
			Caller:        "alice",
			Owner:         "alice",
			Receiver:      "alice",
			Assets:        "50",
		}).Return(&usecase.VaultOperationResult{
			Caller:       "alice",
			Owner:        "alice",
			Receiver:     "alice",
			Assets:       "50.00000000",
			Shares:       "25.00000000",
			ShareBalance: "75.00000000",
		}, nil)

		recorder := postJSON(t, router, "/vault/alice/withdraw", dto.VaultWithdrawRequest{
			InstructionID: "instr-2",
			Assets:        "50",
		})

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp dto.VaultOperationResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "25.00000000", resp.Shares)
		assert.Equal(t, "75.00000000", resp.ShareBalance)
	})

	t.Run("insufficient shares map to 422", func(t *testing.T) {
		uc, router := setupVaultRouter(t)

		uc.On("Withdraw", mock.Anything, mock.Anything).
			Return(nil, domainerr.NewInsufficientSharesError("alice", 100, 10))

		recorder := postJSON(t, router, "/vault/alice/withdraw", dto.VaultWithdrawRequest{
			InstructionID: "instr-2",
			Assets:        "100",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})

	t.Run("insufficient pool assets map to 422", func(t *testing.T) {
		uc, router := setupVaultRouter(t)

		uc.On("Withdraw", mock.Anything, mock.Anything).
			Return(nil, domainerr.ErrInsufficientAssets)

		recorder := postJSON(t, router, "/vault/alice/withdraw", dto.VaultWithdrawRequest{
			InstructionID: "instr-3",
			Assets:        "100",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

		var response dto.ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, domainerr.ErrorCode(domainerr.ErrInsufficientAssets), response.Code)
	})
}

func TestVaultHandlerReads(t *testing.T) {
	t.Run("account state", func(t *testing.T) {
		uc, router := setupVaultRouter(t)

		uc.On("GetAccount", mock.Anything, "alice").Return(&usecase.VaultAccountState{
			Owner:      "alice",
			Shares:     "100.00000000",
			AssetValue: "200.00000000",
		}, nil)

		recorder := getRequest(t, router, "/vault/accounts/alice")

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp dto.VaultAccountResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "200.00000000", resp.AssetValue)
	})

	t.Run("vault aggregates", func(t *testing.T) {
		uc, router := setupVaultRouter(t)

		uc.On("GetState", mock.Anything).Return(&usecase.VaultState{
			TotalAssets: "1000.00000000",
			TotalShares: "400.00000000",
		}, nil)

		recorder := getRequest(t, router, "/vault")

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp dto.VaultStateResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "1000.00000000", resp.TotalAssets)
		assert.Equal(t, "400.00000000", resp.TotalShares)
	})

	t.Run("conversion previews", func(t *testing.T) {
		uc, router := setupVaultRouter(t)

		uc.On("ConvertToShares", mock.Anything, "100").Return("40", nil)
		uc.On("ConvertToAssets", mock.Anything, "40").Return("100", nil)

		shares := getRequest(t, router, "/vault/convert/shares?assets=100")
		require.Equal(t, http.StatusOK, shares.Code)

		var sharesResp dto.ConversionResponse
		require.NoError(t, json.Unmarshal(shares.Body.Bytes(), &sharesResp))
		assert.Equal(t, "40", sharesResp.Output)

		assets := getRequest(t, router, "/vault/convert/assets?shares=40")
		require.Equal(t, http.StatusOK, assets.Code)

		var assetsResp dto.ConversionResponse
		require.NoError(t, json.Unmarshal(assets.Body.Bytes(), &assetsResp))
		assert.Equal(t, "100", assetsResp.Output)
	})

	t.Run("missing conversion parameter is rejected", func(t *testing.T) {
		uc, router := setupVaultRouter(t)

		recorder := getRequest(t, router, "/vault/convert/shares")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		uc.AssertNotCalled(t, "ConvertToShares")
	})
}
