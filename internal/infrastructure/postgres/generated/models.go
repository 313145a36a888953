
package generated

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type BankAccount struct {
	ID            string             `json:"id"`
	WalletID      string             `json:"wallet_id"`
	AccountNumber string             `json:"account_number"`
	AccountName   string             `json:"account_name"`
	Bank          string             `json:"bank"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

type Transaction struct {
	ID          string             `json:"id"`
	WalletID    string             `json:"wallet_id"`
	Amount      pgtype.Numeric     `json:"amount"`
	Direction   string             `json:"direction"`
	Description string             `json:"description"`
	Gateway     string             `json:"gateway"`
	Status      string             `json:"status"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

type Wallet struct {
	ID          string             `json:"id"`
	Email       string             `json:"email"`
	PhoneNumber string             `json:"phone_number"`
	Balance     pgtype.Numeric     `json:"balance"`
	Version     int64              `json:"version"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}
