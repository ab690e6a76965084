package backend

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexString decodes a JSON field that the admin backend serves
// inconsistently as either a string or a number.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// Float returns the numeric value, 0 if absent or non-numeric.
func (f FlexString) Float() float64 {
	v, err := strconv.ParseFloat(string(f), 64)
	if err != nil {
		return 0
	}
	return v
}

// Int returns the integer value, 0 if absent or non-numeric.
func (f FlexString) Int() int {
	v, err := strconv.Atoi(string(f))
	if err != nil {
		return 0
	}
	return v
}

// ItemRecord is a raw order line as served by order_list
type ItemRecord struct {
	Name     string     `json:"name"`
	Quantity FlexString `json:"quantity"`
	Price    FlexString `json:"price"`
}

// OrderRecord is a raw order as served by order_list. Field names follow the
// admin backend's column naming.
type OrderRecord struct {
	F4NO    FlexString   `json:"F4_NO"`
	M1Name  string       `json:"M1_NAME"`
	F4Add1  string       `json:"F4_ADD1"`
	F4Add2  string       `json:"F4_ADD2"`
	F4Add3  string       `json:"F4_ADD3"`
	F4Add4  string       `json:"F4_ADD4"`
	F4Add7  string       `json:"F4_ADD7"`
	F4GTot  FlexString   `json:"F4_GTOT"`
	F4Stat  FlexString   `json:"F4_STAT"`
	F4BT    string       `json:"F4_BT"`
	F4Date  string       `json:"F4_DATE"`
	Items   []ItemRecord `json:"items"`
}

// VendorRecord is the raw vendor profile as served by user_profile and
// verify_otp
type VendorRecord struct {
	M1Code  FlexString `json:"M1_CODE"`
	M1Name  string     `json:"M1_NAME"`
	M1BName string     `json:"M1_BNAME"`
	M1IT    string     `json:"M1_IT"`
	M1PM    string     `json:"M1_PM"`
	M1DT1   string     `json:"M1_DT1"`
	M1Add   string     `json:"M1_ADD"`
	M1Tel   string     `json:"M1_TEL"`
	M1Tel1  string     `json:"M1_TEL1"`
	M1Tel2  string     `json:"M1_TEL2"`
	M1IT1   string     `json:"M1_IT1"`
	M1DC0   string     `json:"M1_DC0"`
}

// TransactionRecord is a raw ledger entry as served by the transaction
// endpoints
type TransactionRecord struct {
	F5NO   FlexString `json:"F5_NO"`
	F5Type string     `json:"F5_TYPE"`
	F5Amt  FlexString `json:"F5_AMT"`
	F5Date string     `json:"F5_DATE"`
}

// DashboardRecord is the raw counter row served by dashboard_data
type DashboardRecord struct {
	TotalTodayOrder      FlexString `json:"total_today_order"`
	TotalPendingOrder    FlexString `json:"total_pending_order"`
	TotalProcessingOrder FlexString `json:"total_processing_order"`
	TotalDeliveredOrder  FlexString `json:"total_delivered_order"`
	TotalCancelOrder     FlexString `json:"total_cancel_order"`
}

// ProductRecord is a raw catalog row served by product_list
type ProductRecord struct {
	ID    FlexString `json:"id"`
	Name  string     `json:"name"`
	Price FlexString `json:"price"`
	Image string     `json:"image"`
	Stock FlexString `json:"stock"`
}

// summaryRecord is the totals block served by get_all_transaction
type summaryRecord struct {
	TotalCommission FlexString `json:"total_commission"`
	TotalPayout     FlexString `json:"total_payout"`
	TotalBalance    FlexString `json:"total_balance"`
}
