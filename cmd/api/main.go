package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	authUseCase "github.com/amirhossein-jamali/family-ledger/internal/domain/usecase/auth"
	familyUseCase "github.com/amirhossein-jamali/family-ledger/internal/domain/usecase/family"
	transactionUseCase "github.com/amirhossein-jamali/family-ledger/internal/domain/usecase/transaction"

	"github.com/amirhossein-jamali/family-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/family-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/family-ledger/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/family-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/family-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/family-ledger/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/family-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/family-ledger/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() {
		_ = appLogger.Flush()
	}()

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      int(cfg.Database.RetryDelay.Seconds()),
	}
	if err := dbConfig.Validate(); err != nil {
		log.Fatalf("Invalid database configuration: %v", err)
	}

	// Initialize time provider
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
	if err := dbManager.Migrate(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)
	familyRepo := repository.NewFamilyRepository(dbManager.DB(), appLogger)
	membershipRepo := repository.NewMembershipRepository(dbManager.DB(), appLogger)
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), appLogger)

	// Unit of work for multi-repository writes
	uow := dbManager.CreateUnitOfWork()

	// Credential and token adapters
	hasher := auth.NewBcryptHasher()
	tokens := auth.NewJWTProvider(cfg.Auth.Secret, cfg.Auth.TokenTTL, cfg.Auth.AllowExpired, tp)

	// Initialize use cases
	authService := authUseCase.NewService(userRepo, hasher, tokens, tp, appLogger)
	familyService := familyUseCase.NewService(familyRepo, membershipRepo, uow, tp, appLogger)
	transactionService := transactionUseCase.NewService(transactionRepo, membershipRepo, tp, appLogger)

	// Initialize API handlers
	authHandler := handler.NewAuthHandler(authService, appLogger)
	familyHandler := handler.NewFamilyHandler(familyService, appLogger)
	transactionHandler := handler.NewTransactionHandler(transactionService, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares and routes
	routes.SetupMiddlewares(router, appLogger, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, authHandler, familyHandler, transactionHandler, tokens, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
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

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
