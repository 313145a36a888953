package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
)

// WalletRepository defines data access for wallets.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id string) (*domain.Wallet, error)
	GetByEmail(ctx context.Context, email string) (*domain.Wallet, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
}

// BankAccountRepository defines data access for linked funding sources.
type BankAccountRepository interface {
	Create(ctx context.Context, account *domain.BankAccount) error
	GetByNumberAndBank(ctx context.Context, accountNumber, bank string) (*domain.BankAccount, error)
	GetByNumberAndWallet(ctx context.Context, tx Transaction, accountNumber, walletID string) (*domain.BankAccount, error)
	ListByWallet(ctx context.Context, walletID string) ([]*domain.BankAccount, error)
}

// TransactionRepository defines data access for transaction records.
// Records are append-only; there is no update or delete surface.
type TransactionRepository interface {
	Create(ctx context.Context, tx Transaction, txn *domain.Transaction) error
	ListByWallet(ctx context.Context, walletID string, limit, offset int) ([]*domain.Transaction, error)
}

// PaymentGateway processes a payment with an external provider. The call is
// synchronous: it returns nil on success or an error wrapping
// domain.ErrPaymentProcessing carrying the provider's reason.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, accountNumber string, amount decimal.Decimal) error
}

// GatewaySelector resolves the strategy registered for a provider. The
// provider set is closed, so resolution has no error path; callers pass
// values produced by domain.ParseGateway.
type GatewaySelector interface {
	Resolve(gateway domain.Gateway) PaymentGateway
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// WalletCacheKey is the cache key for a wallet's cached representation.
func WalletCacheKey(walletID string) string {
	return "wallet:" + walletID
}
