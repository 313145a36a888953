package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gowallet/internal/adapter/http/dto"
	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

// TransactionService defines the behavior needed by TransactionHandler.
type TransactionService interface {
	ListTransactions(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error)
}

// TransactionHandler handles transaction listing HTTP requests.
type TransactionHandler struct {
	transactionUC TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionUC TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionUC: transactionUC}
}

// ListByWallet lists a wallet's transaction records, newest first.
func (h *TransactionHandler) ListByWallet(w http.ResponseWriter, r *http.Request) {
	walletID := chi.URLParam(r, "id")
	if walletID == "" {
		writeError(w, http.StatusBadRequest, "missing wallet ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	txns, err := h.transactionUC.ListTransactions(r.Context(), usecase.ListTransactionsInput{
		WalletID: walletID,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list transactions", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.TransactionsFromDomain(txns),
		Limit:        limit,
		Offset:       offset,
	})
}
