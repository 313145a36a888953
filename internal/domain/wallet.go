package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet represents a user's balance-holding account.
type Wallet struct {
	ID          string
	Email       string
	PhoneNumber string
	Balance     decimal.Decimal
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidateCredit checks if the wallet can be credited by amount.
func (w *Wallet) ValidateCredit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// ApplyCredit returns the new balance after crediting amount.
func (w *Wallet) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return w.Balance.Add(amount)
}
