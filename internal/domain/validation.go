package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidEmail         = errors.New("invalid email format")
	ErrInvalidPhoneNumber   = errors.New("invalid phone number")
	ErrInvalidAccountNumber = errors.New("invalid account number")
	ErrInvalidBankName      = errors.New("invalid bank name")
	ErrAmountTooLarge       = errors.New("amount exceeds maximum allowed")
	ErrAmountTooSmall       = errors.New("amount below minimum allowed")
)

// Validation constants
const (
	MaxBankNameLength   = 100
	MaxFundingAmount    = "1000000000" // 1 billion
	MinFundingAmount    = "0.01"
	AccountNumberLength = 10
)

var (
	emailRegex         = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex         = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	accountNumberRegex = regexp.MustCompile(`^[0-9]+$`)
)

// ValidateEmail validates email format
func ValidateEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}

	return nil
}

// ValidatePhoneNumber validates phone number format
func ValidatePhoneNumber(phone string) error {
	phone = strings.TrimSpace(phone)

	if !phoneRegex.MatchString(phone) {
		return ErrInvalidPhoneNumber
	}

	return nil
}

// ValidateAccountNumber validates an external bank account number (NUBAN-style, 10 digits)
func ValidateAccountNumber(accountNumber string) error {
	accountNumber = strings.TrimSpace(accountNumber)

	if len(accountNumber) != AccountNumberLength {
		return fmt.Errorf("%w: must be %d digits", ErrInvalidAccountNumber, AccountNumberLength)
	}

	if !accountNumberRegex.MatchString(accountNumber) {
		return fmt.Errorf("%w: must contain only digits", ErrInvalidAccountNumber)
	}

	return nil
}

// ValidateBankName validates a bank name
func ValidateBankName(bank string) error {
	bank = strings.TrimSpace(bank)

	if bank == "" {
		return fmt.Errorf("%w: bank name cannot be empty", ErrInvalidBankName)
	}

	if len(bank) > MaxBankNameLength {
		return fmt.Errorf("%w: bank name exceeds %d characters", ErrInvalidBankName, MaxBankNameLength)
	}

	return nil
}

// ValidateAmount validates a funding amount
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	minAmount, _ := decimal.NewFromString(MinFundingAmount)
	if amount.LessThan(minAmount) {
		return fmt.Errorf("%w: minimum amount is %s", ErrAmountTooSmall, MinFundingAmount)
	}

	maxAmount, _ := decimal.NewFromString(MaxFundingAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxFundingAmount)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 100
	const DefaultPageSize = 20

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
