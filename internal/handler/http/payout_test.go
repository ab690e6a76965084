package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rxmart/vendormart/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayoutService struct {
	summary     *models.PayoutSummary
	summaryErr  error
	txs         []models.Transaction
	txsErr      error
	withdrawErr error

	lastKind   string
	lastAmount float64
}

func (f *fakePayoutService) Summary(_ context.Context, _ string) (*models.PayoutSummary, error) {
	return f.summary, f.summaryErr
}

func (f *fakePayoutService) Transactions(_ context.Context, _, kind string) ([]models.Transaction, error) {
	f.lastKind = kind
	return f.txs, f.txsErr
}

func (f *fakePayoutService) Withdraw(_ context.Context, _ string, amount float64) error {
	f.lastAmount = amount
	return f.withdrawErr
}

func payoutRouter(svc PayoutService) chi.Router {
	h := NewPayoutHandler(svc)
	r := chi.NewRouter()
	r.Get("/api/payouts/summary", h.GetSummary())
	r.Get("/api/payouts/transactions/{kind}", h.ListTransactions())
	r.Post("/api/payouts/withdraw", h.RequestWithdrawal())
	return r
}

func TestGetSummary(t *testing.T) {
	svc := &fakePayoutService{summary: &models.PayoutSummary{
		TotalCommission: 120.5,
		TotalPayout:     800,
		TotalBalance:    321.5,
	}}
	router := payoutRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodGet, "/api/payouts/summary", ""))

	require.Equal(t, http.StatusOK, w.Code)

	var res models.PayoutSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.InDelta(t, 321.5, res.TotalBalance, 1e-9)
}

func TestListTransactions(t *testing.T) {
	tests := []struct {
		name       string
		kind       string
		wantStatus int
	}{
		{name: "withdrawal", kind: "withdrawal", wantStatus: http.StatusOK},
		{name: "payout", kind: "payout", wantStatus: http.StatusOK},
		{name: "commission", kind: "commission", wantStatus: http.StatusOK},
		{name: "unknown_kind", kind: "bonus", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakePayoutService{txs: []models.Transaction{{Ref: "W-17", Amount: 500}}}
			router := payoutRouter(svc)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, authedRequest(http.MethodGet, "/api/payouts/transactions/"+tt.kind, ""))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.kind, svc.lastKind)
			}
		})
	}
}

func TestRequestWithdrawal(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "ok", body: `{"amount":300}`, wantStatus: http.StatusOK},
		{name: "malformed_body", body: `{"amount":`, wantStatus: http.StatusBadRequest},
		{name: "invalid_amount", body: `{"amount":0}`, err: models.ErrInvalidAmount, wantStatus: http.StatusUnprocessableEntity},
		{name: "over_balance", body: `{"amount":99999}`, err: models.ErrInsufficientFunds, wantStatus: http.StatusUnprocessableEntity},
		{name: "backend_down", body: `{"amount":300}`, err: models.ErrBackendUnavailable, wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakePayoutService{withdrawErr: tt.err}
			router := payoutRouter(svc)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, authedRequest(http.MethodPost, "/api/payouts/withdraw", tt.body))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.InDelta(t, 300, svc.lastAmount, 1e-9)
			}
		})
	}
}

func TestPayoutUnauthenticated(t *testing.T) {
	router := payoutRouter(&fakePayoutService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/payouts/summary", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
