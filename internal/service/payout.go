package service

import (
	"context"

	"github.com/rxmart/vendormart/internal/backend"
	"github.com/rxmart/vendormart/internal/models"
)

// PayoutBackend is the slice of the admin API behind the payout screen
type PayoutBackend interface {
	TransactionSummary(ctx context.Context, vendorID string) (*models.PayoutSummary, error)
	Transactions(ctx context.Context, vendorID, kind string) ([]backend.TransactionRecord, error)
	SendWithdrawalRequest(ctx context.Context, vendorID string, amount float64) error
}

// PayoutService implements the payout/withdrawal surface
type PayoutService struct {
	backend PayoutBackend
}

// NewPayoutService creates new PayoutService instance
func NewPayoutService(backend PayoutBackend) *PayoutService {
	return &PayoutService{backend: backend}
}

// Summary returns the vendor's ledger totals
func (ps *PayoutService) Summary(ctx context.Context, vendorID string) (*models.PayoutSummary, error) {
	return ps.backend.TransactionSummary(ctx, vendorID)
}

// Transactions returns one ledger list: withdrawal, payout or commission
func (ps *PayoutService) Transactions(ctx context.Context, vendorID, kind string) ([]models.Transaction, error) {
	records, err := ps.backend.Transactions(ctx, vendorID, kind)
	if err != nil {
		return nil, err
	}

	txs := make([]models.Transaction, 0, len(records))
	for _, rec := range records {
		txs = append(txs, models.Transaction{
			Ref:    string(rec.F5NO),
			Type:   rec.F5Type,
			Amount: rec.F5Amt.Float(),
			Date:   rec.F5Date,
		})
	}

	return txs, nil
}

// Withdraw validates and submits a withdrawal request. Validation failures
// are caught before any backend call is made.
func (ps *PayoutService) Withdraw(ctx context.Context, vendorID string, amount float64) error {
	if amount <= 0 {
		return models.ErrInvalidAmount
	}

	summary, err := ps.backend.TransactionSummary(ctx, vendorID)
	if err != nil {
		return err
	}

	if amount > summary.TotalBalance {
		return models.ErrInsufficientFunds
	}

	return ps.backend.SendWithdrawalRequest(ctx, vendorID, amount)
}
