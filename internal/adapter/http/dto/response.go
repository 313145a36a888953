package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
)

// WalletResponse represents a wallet in API responses.
type WalletResponse struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phone_number"`
	Balance     decimal.Decimal `json:"balance"`
	Version     int64           `json:"version"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// WalletFromDomain converts a domain wallet to a response.
func WalletFromDomain(w *domain.Wallet) *WalletResponse {
	return &WalletResponse{
		ID:          w.ID,
		Email:       w.Email,
		PhoneNumber: w.PhoneNumber,
		Balance:     w.Balance,
		Version:     w.Version,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

// BankAccountResponse represents a linked bank account in API responses.
type BankAccountResponse struct {
	ID            string    `json:"id"`
	WalletID      string    `json:"wallet_id"`
	AccountNumber string    `json:"account_number"`
	AccountName   string    `json:"account_name"`
	Bank          string    `json:"bank"`
	CreatedAt     time.Time `json:"created_at"`
}

// BankAccountFromDomain converts a domain bank account to a response.
func BankAccountFromDomain(a *domain.BankAccount) *BankAccountResponse {
	return &BankAccountResponse{
		ID:            a.ID,
		WalletID:      a.WalletID,
		AccountNumber: a.AccountNumber,
		AccountName:   a.AccountName,
		Bank:          a.Bank,
		CreatedAt:     a.CreatedAt,
	}
}

// BankAccountsFromDomain converts domain bank accounts to responses.
func BankAccountsFromDomain(accounts []*domain.BankAccount) []*BankAccountResponse {
	result := make([]*BankAccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = BankAccountFromDomain(a)
	}
	return result
}

// ListBankAccountsResponse wraps a list of bank accounts.
type ListBankAccountsResponse struct {
	Accounts []*BankAccountResponse `json:"accounts"`
	Total    int64                  `json:"total"`
}

// TransactionResponse represents a transaction record in API responses.
type TransactionResponse struct {
	ID          string          `json:"id"`
	WalletID    string          `json:"wallet_id"`
	Amount      decimal.Decimal `json:"amount"`
	Direction   string          `json:"direction"`
	Description string          `json:"description"`
	Gateway     string          `json:"gateway"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:          t.ID,
		WalletID:    t.WalletID,
		Amount:      t.Amount,
		Direction:   string(t.Direction),
		Description: t.Description,
		Gateway:     t.Gateway.String(),
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txns []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txns))
	for i, t := range txns {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// ListTransactionsResponse wraps a list of transaction records.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Limit        int                    `json:"limit"`
	Offset       int                    `json:"offset"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
