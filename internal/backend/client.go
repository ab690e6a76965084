// Package backend is the outbound client for the legacy pharmacy admin API.
// Every call is a form-encoded POST answered with a uniform envelope
// {response, message, data}; a non-"success" response is surfaced as a
// models.BackendRejectionError carrying the backend message verbatim.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rxmart/vendormart/internal/models"
)

// default timeout applied when config supplies none
const defaultTimeout = 10 * time.Second

// Client represents HTTP client for admin-backend requests
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient creates new Client instance
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// envelope is the uniform admin-backend response
type envelope struct {
	Response string          `json:"response"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
}

// post sends a form-encoded POST and returns the decoded envelope.
// A non-"success" envelope becomes a BackendRejectionError.
func (c *Client) post(ctx context.Context, path string, form url.Values) (*envelope, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrBackendUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", models.ErrBackendUnavailable, resp.StatusCode)
	}

	env := envelope{}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrBackendUnavailable, err)
	}

	if env.Response != "success" {
		return nil, models.NewBackendRejectionError(env.Message)
	}

	return &env, nil
}

// Login starts the mobile login flow and returns the vendor code
func (c *Client) Login(ctx context.Context, mobile string) (string, error) {
	env, err := c.post(ctx, "user_login", url.Values{"M1_TEL": {mobile}})
	if err != nil {
		return "", err
	}

	var data struct {
		M1Code FlexString `json:"M1_CODE"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrBackendUnavailable, err)
	}

	return string(data.M1Code), nil
}

// SendOTP asks the backend to dispatch an OTP to the vendor's mobile
func (c *Client) SendOTP(ctx context.Context, code string) error {
	_, err := c.post(ctx, "send_otp", url.Values{"M1_CODE": {code}})
	return err
}

// VerifyOTP checks the OTP and returns the vendor profile on success
func (c *Client) VerifyOTP(ctx context.Context, code, otp string) (*VendorRecord, error) {
	env, err := c.post(ctx, "verify_otp", url.Values{
		"M1_CODE": {code},
		"M1_OPP":  {otp},
	})
	if err != nil {
		return nil, err
	}

	vendor := VendorRecord{}
	if err := json.Unmarshal(env.Data, &vendor); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrBackendUnavailable, err)
	}

	return &vendor, nil
}

// OrderList returns the raw orders of one order-type bucket.
// orderType is one of Placed, Accept, Out For Delivery, Delivered.
func (c *Client) OrderList(ctx context.Context, vendorID, orderType string) ([]OrderRecord, error) {
	env, err := c.post(ctx, "order_list", url.Values{
		"F4_PARTY1": {vendorID},
		"F4_BT":     {orderType},
	})
	if err != nil {
		return nil, err
	}

	var records []OrderRecord
	if err := json.Unmarshal(env.Data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrBackendUnavailable, err)
	}

	return records, nil
}

// AcceptOrder submits the vendor's accept/reject decision for an incoming
// order. stat is the delivery stat the order should take: "1" self, "2"
// partner, "0" rejected. Returns the backend confirmation message.
func (c *Client) AcceptOrder(ctx context.Context, vendorID, orderID, decision, stat string) (string, error) {
	env, err := c.post(ctx, "accept_order", url.Values{
		"M1_CODE": {vendorID},
		"F4_NO":   {orderID},
		"F4_BT":   {decision},
		"F4_STAT": {stat},
	})
	if err != nil {
		return "", err
	}

	return env.Message, nil
}

// OutForSelfDelivery moves a self-delivery order to Out For Delivery
func (c *Client) OutForSelfDelivery(ctx context.Context, vendorID, orderID string) error {
	_, err := c.post(ctx, "out_for_self_delivery", url.Values{
		"M1_CODE": {vendorID},
		"F4_NO":   {orderID},
	})
	return err
}

// SelfOrderDelivered marks a self-delivery order as delivered
func (c *Client) SelfOrderDelivered(ctx context.Context, vendorID, orderID string) error {
	_, err := c.post(ctx, "self_order_delivered", url.Values{
		"M1_CODE": {vendorID},
		"F4_NO":   {orderID},
	})
	return err
}

// ProductList returns the raw product catalog
func (c *Client) ProductList(ctx context.Context) ([]ProductRecord, error) {
	env, err := c.post(ctx, "product_list", url.Values{})
	if err != nil {
		return nil, err
	}

	var records []ProductRecord
	if err := json.Unmarshal(env.Data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrBackendUnavailable, err)
	}

	return records, nil
}

// DashboardData returns the vendor's order counters
func (c *Client) DashboardData(ctx context.Context, vendorID string) (*DashboardRecord, error) {
	env, err := c.post(ctx, "dashboard_data", url.Values{"M1_CODE": {vendorID}})
	if err != nil {
		return nil, err
	}

	// the backend serves the counters as a single-element array
	var rows []DashboardRecord
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrBackendUnavailable, err)
	}
	if len(rows) == 0 {
		return nil, models.ErrDataNotFound
	}

	return &rows[0], nil
}

// Profile returns the raw vendor profile
func (c *Client) Profile(ctx context.Context, vendorID string) (*VendorRecord, error) {
	env, err := c.post(ctx, "user_profile", url.Values{"M1_CODE": {vendorID}})
	if err != nil {
		return nil, err
	}

	vendor := VendorRecord{}
	if err := json.Unmarshal(env.Data, &vendor); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrBackendUnavailable, err)
	}

	return &vendor, nil
}

// UpdateProfile writes the editable vendor profile fields back
func (c *Client) UpdateProfile(ctx context.Context, vendorID string, vendor *models.Vendor) error {
	_, err := c.post(ctx, "update_profile", url.Values{
		"M1_CODE":  {vendorID},
		"M1_NAME":  {vendor.OwnerName},
		"M1_IT":    {vendor.Email},
		"M1_PM":    {vendor.Gender},
		"M1_DT1":   {vendor.DOB},
		"M1_ADD":   {vendor.Address},
		"M1_BNAME": {vendor.BusinessName},
		"M1_TEL1":  {vendor.Mobile},
		"M1_TEL2":  {vendor.AltMobile},
		"M1_IT1":   {vendor.OfficeMail},
	})
	return err
}

// TransactionSummary returns the vendor's ledger totals
func (c *Client) TransactionSummary(ctx context.Context, vendorID string) (*models.PayoutSummary, error) {
	env, err := c.post(ctx, "get_all_transaction", url.Values{"M1_CODE": {vendorID}})
	if err != nil {
		return nil, err
	}

	sum := summaryRecord{}
	if err := json.Unmarshal(env.Data, &sum); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrBackendUnavailable, err)
	}

	return &models.PayoutSummary{
		TotalCommission: sum.TotalCommission.Float(),
		TotalPayout:     sum.TotalPayout.Float(),
		TotalBalance:    sum.TotalBalance.Float(),
	}, nil
}

// Transactions returns one ledger list. kind selects the endpoint:
// withdrawal, payout or commission.
func (c *Client) Transactions(ctx context.Context, vendorID, kind string) ([]TransactionRecord, error) {
	var path string
	switch kind {
	case "withdrawal":
		path = "get_all_withdrawal_transaction"
	case "payout":
		path = "get_all_payout_transaction"
	case "commission":
		path = "get_all_commission_transaction"
	default:
		return nil, fmt.Errorf("unknown transaction kind %q", kind)
	}

	env, err := c.post(ctx, path, url.Values{"M1_CODE": {vendorID}})
	if err != nil {
		return nil, err
	}

	var records []TransactionRecord
	if err := json.Unmarshal(env.Data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrBackendUnavailable, err)
	}

	return records, nil
}

// SendWithdrawalRequest submits a withdrawal for the given amount
func (c *Client) SendWithdrawalRequest(ctx context.Context, vendorID string, amount float64) error {
	_, err := c.post(ctx, "send_withdrawal_request", url.Values{
		"M1_CODE": {vendorID},
		"F5_AMT":  {fmt.Sprintf("%.2f", amount)},
	})
	return err
}
