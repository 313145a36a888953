package integration

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/rs/zerolog"

	adaptershttp "github.com/iho/gowallet/internal/adapter/http"
	"github.com/iho/gowallet/internal/adapter/http/handler"
	"github.com/iho/gowallet/internal/adapter/repository/postgres"
	redisrepo "github.com/iho/gowallet/internal/adapter/repository/redis"
	"github.com/iho/gowallet/internal/gateway"
	infraredis "github.com/iho/gowallet/internal/infrastructure/redis"
	"github.com/iho/gowallet/internal/usecase"
	"github.com/iho/gowallet/tests/testutil"
)

// newTestRouter wires the full HTTP stack against the test database with a
// deterministic payment outcome.
func newTestRouter(t *testing.T, testDB *testutil.TestDB, policy gateway.FailurePolicy) http.Handler {
	t.Helper()

	ctx := context.Background()
	pool := testDB.Pool

	txManager := postgres.NewTxManager(pool)
	walletRepo := postgres.NewWalletRepository(pool)
	bankAccountRepo := postgres.NewBankAccountRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	idGen := postgres.NewULIDGenerator()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { redisClient.Close() })

	cache := redisrepo.NewCache(redisClient)
	idempotencyStore := redisrepo.NewIdempotencyStore(redisClient)

	selector := gateway.NewSimulatedSelector(0, policy, zerolog.Nop())

	walletUC := usecase.NewWalletUseCase(walletRepo, idGen, cache)
	bankAccountUC := usecase.NewBankAccountUseCase(bankAccountRepo, walletRepo, idGen)
	fundingUC := usecase.NewFundingUseCase(txManager, walletRepo, bankAccountRepo, transactionRepo, selector, idGen, cache)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo, walletRepo)

	return adaptershttp.NewRouter(adaptershttp.RouterConfig{
		WalletHandler:      handler.NewWalletHandler(walletUC),
		BankAccountHandler: handler.NewBankAccountHandler(bankAccountUC),
		FundingHandler:     handler.NewFundingHandler(fundingUC),
		TransactionHandler: handler.NewTransactionHandler(transactionUC),
		HealthHandler:      handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:   idempotencyStore,
	})
}
