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

// FundingService defines the behavior needed by FundingHandler.
type FundingService interface {
	FundWallet(ctx context.Context, input usecase.FundWalletInput) (*domain.Transaction, error)
}

// FundingHandler handles wallet funding HTTP requests.
type FundingHandler struct {
	fundingUC FundingService
}

// NewFundingHandler creates a new FundingHandler.
func NewFundingHandler(fundingUC FundingService) *FundingHandler {
	return &FundingHandler{fundingUC: fundingUC}
}

// Fund credits a wallet through a payment gateway.
func (h *FundingHandler) Fund(w http.ResponseWriter, r *http.Request) {
	walletID := chi.URLParam(r, "id")
	if walletID == "" {
		writeError(w, http.StatusBadRequest, "missing wallet ID", "")
		return
	}

	var req dto.FundWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	gateway, err := req.Validate()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	txn, err := h.fundingUC.FundWallet(r.Context(), req.ToUseCaseInput(walletID, gateway))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to fund wallet", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(txn))
}
