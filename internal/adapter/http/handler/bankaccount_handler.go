package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gowallet/internal/adapter/http/dto"
	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

// BankAccountService defines the behavior needed by BankAccountHandler.
type BankAccountService interface {
	LinkBankAccount(ctx context.Context, input usecase.LinkBankAccountInput) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context, walletID string) ([]*domain.BankAccount, error)
}

// BankAccountHandler handles bank account HTTP requests.
type BankAccountHandler struct {
	bankAccountUC BankAccountService
}

// NewBankAccountHandler creates a new BankAccountHandler.
func NewBankAccountHandler(bankAccountUC BankAccountService) *BankAccountHandler {
	return &BankAccountHandler{bankAccountUC: bankAccountUC}
}

// Link links a bank account to a wallet.
func (h *BankAccountHandler) Link(w http.ResponseWriter, r *http.Request) {
	walletID := chi.URLParam(r, "id")
	if walletID == "" {
		writeError(w, http.StatusBadRequest, "missing wallet ID", "")
		return
	}

	var req dto.LinkBankAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	account, err := h.bankAccountUC.LinkBankAccount(r.Context(), req.ToUseCaseInput(walletID))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to link bank account", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.BankAccountFromDomain(account))
}

// List lists the bank accounts linked to a wallet.
func (h *BankAccountHandler) List(w http.ResponseWriter, r *http.Request) {
	walletID := chi.URLParam(r, "id")
	if walletID == "" {
		writeError(w, http.StatusBadRequest, "missing wallet ID", "")
		return
	}

	accounts, err := h.bankAccountUC.ListBankAccounts(r.Context(), walletID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list bank accounts", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ListBankAccountsResponse{
		Accounts: dto.BankAccountsFromDomain(accounts),
		Total:    int64(len(accounts)),
	})
}
