package models

// transaction type labels used by the ledger endpoints
const (
	TransactionTypeOrder      = "Orders"
	TransactionTypePayout     = "Payouts"
	TransactionTypeCommission = "Commission"
	TransactionTypeWithdrawal = "Withdrawal"
)

// Transaction is a single entry in the vendor's money ledger
type Transaction struct {
	Ref    string  `json:"ref"`
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

// PayoutSummary contains the running totals shown above the ledger
type PayoutSummary struct {
	TotalCommission float64 `json:"total_commission"`
	TotalPayout     float64 `json:"total_payout"`
	TotalBalance    float64 `json:"total_balance"`
}

// Withdraw is a vendor withdrawal request
type Withdraw struct {
	VendorID string  `json:"vendor_id"`
	Amount   float64 `json:"amount"`
}
