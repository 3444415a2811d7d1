package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	coreport "github.com/velabs/govlock/internal/domain/port/core"
	escrowUseCase "github.com/velabs/govlock/internal/domain/usecase/escrow"
	ledgerUseCase "github.com/velabs/govlock/internal/domain/usecase/ledger"
	"github.com/velabs/govlock/internal/domain/usecase/sequencer"
	vaultUseCase "github.com/velabs/govlock/internal/domain/usecase/vault"

	"github.com/velabs/govlock/internal/infrastructure/adapter/api/handler"
	"github.com/velabs/govlock/internal/infrastructure/adapter/api/routes"
	"github.com/velabs/govlock/internal/infrastructure/adapter/database"
	"github.com/velabs/govlock/internal/infrastructure/adapter/database/migration"
	"github.com/velabs/govlock/internal/infrastructure/adapter/logger"
	"github.com/velabs/govlock/internal/infrastructure/adapter/repository"
	timeProvider "github.com/velabs/govlock/internal/infrastructure/adapter/time"
	"github.com/velabs/govlock/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)

	dbConfig := database.CreateConfigFromViperConfig(cfg)

	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.MigrationManager().MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	lockRepo := repository.NewLockRepository(dbManager.DB(), tp, appLogger)
	vaultRepo := repository.NewVaultRepository(dbManager.DB(), tp, appLogger)
	balanceRepo := repository.NewBalanceRepository(dbManager.DB(), tp, appLogger)
	eventRepo := repository.NewEventRepository(dbManager.DB(), appLogger)
	accountLockRepo := repository.NewAccountLockRepository(dbManager.DB(), tp, appLogger)

	// Unit of work coordinates atomic ledger mutations
	uow := dbManager.CreateUnitOfWork()

	// In-process instruction sequencer, one queue per serialization key
	seq := sequencer.New(appLogger)

	lockTimeout := time.Duration(cfg.Ledger.LockTimeoutMs) * time.Millisecond

	escrowService := escrowUseCase.NewService(
		uow,
		lockRepo,
		eventRepo,
		accountLockRepo,
		seq,
		tp,
		appLogger,
		lockTimeout,
	)

	vaultService := vaultUseCase.NewService(
		uow,
		vaultRepo,
		eventRepo,
		accountLockRepo,
		seq,
		tp,
		appLogger,
		lockTimeout,
	)

	ledgerService := ledgerUseCase.NewService(
		balanceRepo,
		eventRepo,
		appLogger,
		cfg.Ledger.HistoryDefaultLimit,
	)

	// Seed development accounts so the ledgers are usable out of the box
	if cfg.Environment == config.Development {
		if err := seedDevelopmentAccounts(balanceRepo); err != nil {
			appLogger.Error("Failed to seed default accounts", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// Periodically clear expired account locks left by crashed holders
	cleanupInterval := time.Duration(cfg.Ledger.LockCleanupSeconds) * time.Second
	cleanupStop := startLockCleanup(accountLockRepo, dbManager, appLogger, cleanupInterval, cfg.Ledger.MaxRetries)

	// Initialize API handlers
	escrowHandler := handler.NewEscrowHandler(escrowService, appLogger)
	vaultHandler := handler.NewVaultHandler(vaultService, appLogger)
	ledgerHandler := handler.NewLedgerHandler(ledgerService, appLogger)
	healthHandler := handler.NewHealthHandler(func(ctx context.Context) error {
		sqlDB, err := dbManager.DB().DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}, func() map[string]any {
		pool := dbManager.PoolMetrics()
		return map[string]any{
			"open_connections": pool.OpenConnections,
			"in_use":           pool.InUse,
			"idle":             pool.IdleConnections,
			"wait_count":       pool.WaitCount,
		}
	}, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, escrowHandler, vaultHandler, ledgerHandler, healthHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	close(cleanupStop)

	// Stop accepting requests before draining the sequencer so in-flight
	// handlers never submit to a stopped queue.
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Shutting down instruction sequencer...", nil)
	seq.Shutdown()

	if err := appLogger.Flush(); err != nil {
		log.Printf("Failed to flush logger: %v", err)
	}

	appLogger.Info("Server exited gracefully", nil)
}

// seedDevelopmentAccounts funds the default accounts used in development
func seedDevelopmentAccounts(balanceRepo *repository.BalanceRepository) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return migration.SeedDefaultAccounts(ctx, balanceRepo)
}

// startLockCleanup runs expired account lock cleanup on a fixed interval
// until the returned channel is closed
func startLockCleanup(
	accountLocks *repository.AccountLockRepository,
	dbManager *database.Manager,
	appLogger coreport.Logger,
	interval time.Duration,
	maxRetries int,
) chan struct{} {
	stop := make(chan struct{})

	retryConfig := database.DefaultRetryConfig()
	if maxRetries > 0 {
		retryConfig.MaxRetries = maxRetries
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				ctx, cancel := dbManager.WithTimeout(context.Background())
				err := database.RetryOnTransientError(ctx, retryConfig, func() error {
					return accountLocks.CleanupExpired(ctx)
				}, appLogger)
				if err != nil {
					appLogger.Warn("Expired lock cleanup failed", map[string]any{
						"error": err.Error(),
					})
				}
				cancel()
			case <-stop:
				return
			}
		}
	}()

	return stop
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" && os.Getenv("VE_DB_HOST") == "" {
		missingConfigs = append(missingConfigs, "database.host (or VE_DB_HOST environment variable)")
	}
	if cfg.Database.Username == "" && os.Getenv("VE_DB_USERNAME") == "" {
		missingConfigs = append(missingConfigs, "database.username (or VE_DB_USERNAME environment variable)")
	}
	if cfg.Database.Password == "" && os.Getenv("VE_DB_PASSWORD") == "" {
		missingConfigs = append(missingConfigs, "database.password (or VE_DB_PASSWORD environment variable)")
	}
	if cfg.Database.Database == "" && os.Getenv("VE_DB_NAME") == "" {
		missingConfigs = append(missingConfigs, "database.database (or VE_DB_NAME environment variable)")
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Ledger.LockTimeoutMs == 0 {
		missingConfigs = append(missingConfigs, "ledger.lockTimeoutMs")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
