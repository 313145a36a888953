package domain

import "time"

// BankAccount is an external funding source linked to exactly one wallet.
// The pair (AccountNumber, Bank) is unique across the store, so a given
// external account can only ever fund one wallet.
type BankAccount struct {
	ID            string
	WalletID      string
	AccountNumber string
	AccountName   string
	Bank          string
	CreatedAt     time.Time
}
