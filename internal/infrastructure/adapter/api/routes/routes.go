package routes

import (
	coreport "github.com/velabs/govlock/internal/domain/port/core"
	"github.com/velabs/govlock/internal/infrastructure/adapter/api/handler"
	"github.com/velabs/govlock/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	escrowHandler *handler.EscrowHandler,
	vaultHandler *handler.VaultHandler,
	ledgerHandler *handler.LedgerHandler,
	healthHandler *handler.HealthHandler,
) {
	// Escrow routes
	escrowRoutes := router.Group("/escrow")
	{
		// GET /escrow/:owner
		escrowRoutes.GET("/:owner", escrowHandler.GetLock)

		// GET /escrow/:owner/voting-power
		escrowRoutes.GET("/:owner/voting-power", escrowHandler.GetVotingPower)

		// POST /escrow/:owner/lock
		escrowRoutes.POST("/:owner/lock", escrowHandler.CreateLock)

		// POST /escrow/:owner/increase
		escrowRoutes.POST("/:owner/increase", escrowHandler.IncreaseAmount)

		// POST /escrow/:owner/withdraw
		escrowRoutes.POST("/:owner/withdraw", escrowHandler.Withdraw)
	}

	// Vault routes
	// GET /vault
	router.GET("/vault", vaultHandler.GetState)

	vaultRoutes := router.Group("/vault")
	{
		// GET /vault/accounts/:owner
		vaultRoutes.GET("/accounts/:owner", vaultHandler.GetAccount)

		// GET /vault/convert/shares?assets=...
		vaultRoutes.GET("/convert/shares", vaultHandler.ConvertToShares)

		// GET /vault/convert/assets?shares=...
		vaultRoutes.GET("/convert/assets", vaultHandler.ConvertToAssets)

		// POST /vault/:caller/deposit
		vaultRoutes.POST("/:caller/deposit", vaultHandler.Deposit)

		// POST /vault/:caller/withdraw
		vaultRoutes.POST("/:caller/withdraw", vaultHandler.Withdraw)
	}

	// Account routes
	accountRoutes := router.Group("/accounts")
	{
		// GET /accounts/:owner/balance
		accountRoutes.GET("/:owner/balance", ledgerHandler.GetBalance)

		// GET /accounts/:owner/history?limit=...
		accountRoutes.GET("/:owner/history", ledgerHandler.GetHistory)
	}

	// GET /health
	router.GET("/health", healthHandler.Health)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
