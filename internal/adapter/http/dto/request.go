package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

// CreateWalletRequest represents a request to create a wallet.
type CreateWalletRequest struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// Validate checks the request fields.
func (r *CreateWalletRequest) Validate() error {
	if err := domain.ValidateEmail(r.Email); err != nil {
		return err
	}

	return domain.ValidatePhoneNumber(r.PhoneNumber)
}

// ToUseCaseInput converts to use case input.
func (r *CreateWalletRequest) ToUseCaseInput() usecase.CreateWalletInput {
	return usecase.CreateWalletInput{
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
	}
}

// LinkBankAccountRequest represents a request to link a bank account.
type LinkBankAccountRequest struct {
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	Bank          string `json:"bank"`
}

// Validate checks the request fields.
func (r *LinkBankAccountRequest) Validate() error {
	if err := domain.ValidateAccountNumber(r.AccountNumber); err != nil {
		return err
	}

	return domain.ValidateBankName(r.Bank)
}

// ToUseCaseInput converts to use case input.
func (r *LinkBankAccountRequest) ToUseCaseInput(walletID string) usecase.LinkBankAccountInput {
	return usecase.LinkBankAccountInput{
		WalletID:      walletID,
		AccountNumber: r.AccountNumber,
		AccountName:   r.AccountName,
		Bank:          r.Bank,
	}
}

// FundWalletRequest represents a request to fund a wallet.
type FundWalletRequest struct {
	AccountNumber string          `json:"account_number"`
	Amount        decimal.Decimal `json:"amount"`
	Gateway       string          `json:"gateway"`
}

// Validate checks the request fields and resolves the gateway name.
func (r *FundWalletRequest) Validate() (domain.Gateway, error) {
	if err := domain.ValidateAccountNumber(r.AccountNumber); err != nil {
		return "", err
	}

	if err := domain.ValidateAmount(r.Amount); err != nil {
		return "", err
	}

	return domain.ParseGateway(r.Gateway)
}

// ToUseCaseInput converts to use case input.
func (r *FundWalletRequest) ToUseCaseInput(walletID string, gateway domain.Gateway) usecase.FundWalletInput {
	return usecase.FundWalletInput{
		WalletID:      walletID,
		AccountNumber: r.AccountNumber,
		Amount:        r.Amount,
		Gateway:       gateway,
	}
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
