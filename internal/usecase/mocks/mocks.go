package mocks

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

// MockTransaction is a mock implementation of usecase.Transaction.
type MockTransaction struct {
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		if err := m.CommitFunc(ctx); err != nil {
			return err
		}
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		if err := m.RollbackFunc(ctx); err != nil {
			return err
		}
	}
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of usecase.TransactionManager.
type MockTransactionManager struct {
	mu     sync.Mutex
	LastTx *MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTransaction{}
	m.LastTx = tx
	return tx, nil
}

// MockWalletRepository is a mock implementation of usecase.WalletRepository.
type MockWalletRepository struct {
	mu      sync.RWMutex
	wallets map[string]*domain.Wallet

	CreateFunc           func(ctx context.Context, wallet *domain.Wallet) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Wallet, error)
	GetByEmailFunc       func(ctx context.Context, email string) (*domain.Wallet, error)
	ExistsByEmailFunc    func(ctx context.Context, email string) (bool, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Wallet, error)
	UpdateBalanceFunc    func(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
}

func NewMockWalletRepository() *MockWalletRepository {
	return &MockWalletRepository{
		wallets: make(map[string]*domain.Wallet),
	}
}

func (m *MockWalletRepository) Create(ctx context.Context, wallet *domain.Wallet) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, wallet)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wallets[wallet.ID] = wallet
	return nil
}

func (m *MockWalletRepository) GetByID(ctx context.Context, id string) (*domain.Wallet, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if w, ok := m.wallets[id]; ok {
		copied := *w
		return &copied, nil
	}
	return nil, domain.ErrWalletNotFound
}

func (m *MockWalletRepository) GetByEmail(ctx context.Context, email string) (*domain.Wallet, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, w := range m.wallets {
		if w.Email == email {
			copied := *w
			return &copied, nil
		}
	}
	return nil, domain.ErrWalletNotFound
}

func (m *MockWalletRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, w := range m.wallets {
		if w.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockWalletRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Wallet, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockWalletRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, id, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.wallets[id]
	if !ok {
		return domain.ErrWalletNotFound
	}
	w.Balance = balance
	w.Version++
	w.UpdatedAt = updatedAt
	return nil
}

// Balance returns the current stored balance, for assertions.
func (m *MockWalletRepository) Balance(id string) decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if w, ok := m.wallets[id]; ok {
		return w.Balance
	}
	return decimal.Zero
}

// MockBankAccountRepository is a mock implementation of usecase.BankAccountRepository.
type MockBankAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.BankAccount

	CreateFunc               func(ctx context.Context, account *domain.BankAccount) error
	GetByNumberAndBankFunc   func(ctx context.Context, accountNumber, bank string) (*domain.BankAccount, error)
	GetByNumberAndWalletFunc func(ctx context.Context, tx usecase.Transaction, accountNumber, walletID string) (*domain.BankAccount, error)
	ListByWalletFunc         func(ctx context.Context, walletID string) ([]*domain.BankAccount, error)
}

func NewMockBankAccountRepository() *MockBankAccountRepository {
	return &MockBankAccountRepository{
		accounts: make(map[string]*domain.BankAccount),
	}
}

func (m *MockBankAccountRepository) Create(ctx context.Context, account *domain.BankAccount) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.AccountNumber+"|"+account.Bank] = account
	return nil
}

func (m *MockBankAccountRepository) GetByNumberAndBank(ctx context.Context, accountNumber, bank string) (*domain.BankAccount, error) {
	if m.GetByNumberAndBankFunc != nil {
		return m.GetByNumberAndBankFunc(ctx, accountNumber, bank)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[accountNumber+"|"+bank]; ok {
		return acc, nil
	}
	return nil, domain.ErrBankAccountNotFound
}

func (m *MockBankAccountRepository) GetByNumberAndWallet(ctx context.Context, tx usecase.Transaction, accountNumber, walletID string) (*domain.BankAccount, error) {
	if m.GetByNumberAndWalletFunc != nil {
		return m.GetByNumberAndWalletFunc(ctx, tx, accountNumber, walletID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, acc := range m.accounts {
		if acc.AccountNumber == accountNumber && acc.WalletID == walletID {
			return acc, nil
		}
	}
	return nil, domain.ErrBankAccountNotFound
}

func (m *MockBankAccountRepository) ListByWallet(ctx context.Context, walletID string) ([]*domain.BankAccount, error) {
	if m.ListByWalletFunc != nil {
		return m.ListByWalletFunc(ctx, walletID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.BankAccount
	for _, acc := range m.accounts {
		if acc.WalletID == walletID {
			result = append(result, acc)
		}
	}
	return result, nil
}

// MockTransactionRepository is a mock implementation of usecase.TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions []*domain.Transaction

	CreateFunc       func(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error
	ListByWalletFunc func(ctx context.Context, walletID string, limit, offset int) ([]*domain.Transaction, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, txn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = append(m.transactions, txn)
	return nil
}

func (m *MockTransactionRepository) ListByWallet(ctx context.Context, walletID string, limit, offset int) ([]*domain.Transaction, error) {
	if m.ListByWalletFunc != nil {
		return m.ListByWalletFunc(ctx, walletID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	// Newest first: records are appended in creation order.
	var result []*domain.Transaction
	for i := len(m.transactions) - 1; i >= 0; i-- {
		if m.transactions[i].WalletID == walletID {
			result = append(result, m.transactions[i])
		}
	}
	if offset >= len(result) {
		return nil, nil
	}
	result = result[offset:]
	if limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

// Count returns the number of stored records for a wallet, for assertions.
func (m *MockTransactionRepository) Count(walletID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, txn := range m.transactions {
		if txn.WalletID == walletID {
			n++
		}
	}
	return n
}

// MockIDGenerator is a mock implementation of usecase.IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "id-" + strconv.Itoa(m.counter)
}

// MockPaymentGateway is a mock implementation of usecase.PaymentGateway.
type MockPaymentGateway struct {
	Calls atomic.Int32

	ProcessPaymentFunc func(ctx context.Context, accountNumber string, amount decimal.Decimal) error
}

func NewMockPaymentGateway() *MockPaymentGateway {
	return &MockPaymentGateway{}
}

func (m *MockPaymentGateway) ProcessPayment(ctx context.Context, accountNumber string, amount decimal.Decimal) error {
	m.Calls.Add(1)
	if m.ProcessPaymentFunc != nil {
		return m.ProcessPaymentFunc(ctx, accountNumber, amount)
	}
	return nil
}

// MockGatewaySelector resolves every provider to the same strategy.
type MockGatewaySelector struct {
	Gateway usecase.PaymentGateway
}

func NewMockGatewaySelector(gateway usecase.PaymentGateway) *MockGatewaySelector {
	return &MockGatewaySelector{Gateway: gateway}
}

func (m *MockGatewaySelector) Resolve(gateway domain.Gateway) usecase.PaymentGateway {
	return m.Gateway
}
