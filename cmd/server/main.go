package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	redislib "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/gowallet/internal/adapter/http"
	"github.com/iho/gowallet/internal/adapter/http/handler"
	"github.com/iho/gowallet/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/gowallet/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/gowallet/internal/adapter/repository/redis"
	"github.com/iho/gowallet/internal/gateway"
	"github.com/iho/gowallet/internal/infrastructure/config"
	"github.com/iho/gowallet/internal/infrastructure/logger"
	"github.com/iho/gowallet/internal/infrastructure/postgres"
	"github.com/iho/gowallet/internal/infrastructure/redis"
	"github.com/iho/gowallet/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// Connect to PostgreSQL, retrying while the database comes up
	pool, err := connectPostgres(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if cfg.MigrateOnStart {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Connect to Redis
	redisClient, err := connectRedis(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	walletRepo := postgresRepo.NewWalletRepository(pool)
	bankAccountRepo := postgresRepo.NewBankAccountRepository(pool)
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Payment gateways
	selector := gateway.NewSimulatedSelector(
		cfg.GatewayDelay,
		gateway.NewRandomFailure(cfg.GatewayFailureRate),
		log.Logger,
	)

	// Initialize use cases
	walletUC := usecase.NewWalletUseCase(walletRepo, idGen, cache)
	bankAccountUC := usecase.NewBankAccountUseCase(bankAccountRepo, walletRepo, idGen)
	fundingUC := usecase.NewFundingUseCase(txManager, walletRepo, bankAccountRepo, transactionRepo, selector, idGen, cache)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo, walletRepo)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		WalletHandler:      handler.NewWalletHandler(walletUC),
		BankAccountHandler: handler.NewBankAccountHandler(bankAccountUC),
		FundingHandler:     handler.NewFundingHandler(fundingUC),
		TransactionHandler: handler.NewTransactionHandler(transactionUC),
		HealthHandler:      handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:   idempotencyStore,
		RateLimiter:        middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		Logger:             log.Logger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func connectPostgres(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = cfg.DatabaseTimeout

	err := backoff.Retry(func() error {
		var err error
		pool, err = postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
		if err != nil {
			log.Warn().Err(err).Msg("postgres not ready, retrying")
		}
		return err
	}, backoff.WithContext(b, ctx))

	return pool, err
}

func connectRedis(ctx context.Context, cfg *config.Config) (*redislib.Client, error) {
	var client *redislib.Client

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 30 * time.Second

	err := backoff.Retry(func() error {
		var err error
		client, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("redis not ready, retrying")
		}
		return err
	}, backoff.WithContext(b, ctx))

	return client, err
}
