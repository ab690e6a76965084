package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rxmart/vendormart/internal/middleware"
	"github.com/rxmart/vendormart/internal/models"
)

// PayoutService drives the payout screen
type PayoutService interface {
	Summary(ctx context.Context, vendorID string) (*models.PayoutSummary, error)
	Transactions(ctx context.Context, vendorID, kind string) ([]models.Transaction, error)
	Withdraw(ctx context.Context, vendorID string, amount float64) error
}

// PayoutHandler represents HTTP handler for payout-related requests
type PayoutHandler struct {
	svc PayoutService
}

// NewPayoutHandler creates new PayoutHandler instance
func NewPayoutHandler(svc PayoutService) *PayoutHandler {
	return &PayoutHandler{svc: svc}
}

// GetSummary returns the vendor's ledger totals
// 200 — totals returned;
// 401 — vendor not authenticated;
// 502 — admin backend unreachable.
func (ph *PayoutHandler) GetSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		summary, err := ph.svc.Summary(r.Context(), sess.VendorID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// ListTransactions returns one ledger list, selected by the kind URL param:
// withdrawal, payout or commission.
// 200 — list returned;
// 400 — unknown kind;
// 401 — vendor not authenticated;
// 502 — admin backend unreachable.
func (ph *PayoutHandler) ListTransactions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		kind := chi.URLParam(r, "kind")
		switch kind {
		case "withdrawal", "payout", "commission":
		default:
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		txs, err := ph.svc.Transactions(r.Context(), sess.VendorID, kind)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, txs)
	}
}

type withdrawRequest struct {
	Amount float64 `json:"amount"`
}

// RequestWithdrawal submits a withdrawal request
// 200 — request accepted by the backend;
// 400 — malformed body;
// 401 — vendor not authenticated;
// 422 — amount invalid or exceeding the available balance (no backend call);
// 502 — admin backend unreachable.
func (ph *PayoutHandler) RequestWithdrawal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req withdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := ph.svc.Withdraw(r.Context(), sess.VendorID, req.Amount); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
