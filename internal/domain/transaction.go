package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionDirection indicates whether a transaction credits or debits a wallet.
type TransactionDirection string

const (
	DirectionCredit TransactionDirection = "CREDIT"
	DirectionDebit  TransactionDirection = "DEBIT"
)

// TransactionStatus is the recorded outcome of a transaction.
type TransactionStatus string

const (
	StatusSuccess TransactionStatus = "SUCCESS"
	StatusFailed  TransactionStatus = "FAILED"
)

// Transaction is an immutable record of a wallet operation. Records are
// append-only and listed newest first.
type Transaction struct {
	ID          string
	WalletID    string
	Amount      decimal.Decimal
	Direction   TransactionDirection
	Description string
	Gateway     Gateway
	Status      TransactionStatus
	CreatedAt   time.Time
}

// Validate checks the transaction record is well formed.
func (t *Transaction) Validate() error {
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if t.Direction != DirectionCredit && t.Direction != DirectionDebit {
		return ErrInvalidDirection
	}
	return nil
}
