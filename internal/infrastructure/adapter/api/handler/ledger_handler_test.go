package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

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

func setupLedgerRouter(t *testing.T) (*mockusecase.MockLedgerUseCase, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	uc := mockusecase.NewMockLedgerUseCase(t)
	h := NewLedgerHandler(uc, logger.NewNoopLogger())

	router := gin.New()
	router.GET("/accounts/:owner/balance", h.GetBalance)
	router.GET("/accounts/:owner/history", h.GetHistory)

	return uc, router
}

func TestLedgerHandlerGetBalance(t *testing.T) {
	t.Run("returns the formatted balance", func(t *testing.T) {
		uc, router := setupLedgerRouter(t)

		uc.On("GetBalance", mock.Anything, "alice").
			Return(&usecase.BalanceView{Account: "alice", Balance: "123.45678900"}, nil)

		recorder := getRequest(t, router, "/accounts/alice/balance")
		require.Equal(t, http.StatusOK, recorder.Code)

		var response dto.BalanceResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "alice", response.Account)
		assert.Equal(t, "123.45678900", response.Balance)
	})

	t.Run("unknown account maps to 404", func(t *testing.T) {
		uc, router := setupLedgerRouter(t)

		uc.On("GetBalance", mock.Anything, "nobody").
			Return(nil, domainerr.ErrAccountNotFound)

		recorder := getRequest(t, router, "/accounts/nobody/balance")
		require.Equal(t, http.StatusNotFound, recorder.Code)

		var response dto.ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, domainerr.ErrorCode(domainerr.ErrAccountNotFound), response.Code)
	})
}

func TestLedgerHandlerGetHistory(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("returns journal entries", func(t *testing.T) {
		uc, router := setupLedgerRouter(t)

		uc.On("GetHistory", mock.Anything, "alice", 0).
			Return([]*usecase.HistoryEntry{
				{
					ID:            7,
					InstructionID: "instr-2",
					Kind:          "vault_deposit",
					Actor:         "bob",
					Owner:         "alice",
					Receiver:      "alice",
					Amount:        "100.00000000",
					Shares:        "50.00000000",
					ResultAmount:  "50.00000000",
					CreatedAt:     createdAt,
				},
			}, nil)

		recorder := getRequest(t, router, "/accounts/alice/history")
		require.Equal(t, http.StatusOK, recorder.Code)

		var response dto.HistoryResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "alice", response.Owner)
		require.Len(t, response.Entries, 1)
		assert.Equal(t, "vault_deposit", response.Entries[0].Kind)
		assert.Equal(t, "100.00000000", response.Entries[0].Amount)
		assert.Equal(t, "50.00000000", response.Entries[0].Shares)
	})

	t.Run("passes an explicit limit through", func(t *testing.T) {
		uc, router := setupLedgerRouter(t)

		uc.On("GetHistory", mock.Anything, "alice", 5).
			Return([]*usecase.HistoryEntry{}, nil)

		recorder := getRequest(t, router, "/accounts/alice/history?limit=5")
		require.Equal(t, http.StatusOK, recorder.Code)

		var response dto.HistoryResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Empty(t, response.Entries)
	})

	t.Run("rejects a malformed limit", func(t *testing.T) {
		uc, router := setupLedgerRouter(t)

		recorder := getRequest(t, router, "/accounts/alice/history?limit=lots")
		require.Equal(t, http.StatusBadRequest, recorder.Code)
		uc.AssertNotCalled(t, "GetHistory")
	})

	t.Run("rejects a non-positive limit", func(t *testing.T) {
		uc, router := setupLedgerRouter(t)

		recorder := getRequest(t, router, "/accounts/alice/history?limit=-1")
		require.Equal(t, http.StatusBadRequest, recorder.Code)
		uc.AssertNotCalled(t, "GetHistory")
	})
}
