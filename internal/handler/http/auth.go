package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rxmart/vendormart/internal/middleware"
	"github.com/rxmart/vendormart/internal/models"
	"github.com/rxmart/vendormart/internal/service"
)

// AuthService drives the mobile+OTP login flow
type AuthService interface {
	Login(ctx context.Context, mobile string) (string, error)
	Verify(ctx context.Context, code, otp string) (*service.AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
}

// AuthHandler represents HTTP handler for auth-related requests
type AuthHandler struct {
	svc AuthService
}

// NewAuthHandler creates new AuthHandler instance
func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type loginRequest struct {
	Mobile string `json:"mobile"`
}

type loginResponse struct {
	VendorCode string `json:"vendor_code"`
	OTPPending bool   `json:"otp_pending"`
}

// LoginVendor starts the login flow
// 200 — otp sent, response carries the vendor code;
// 400 — missing mobile number;
// 409 — backend rejected the number;
// 502 — admin backend unreachable.
func (ah *AuthHandler) LoginVendor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Mobile == "" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		code, err := ah.svc.Login(r.Context(), req.Mobile)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, loginResponse{VendorCode: code, OTPPending: true})
	}
}

type verifyRequest struct {
	VendorCode string `json:"vendor_code"`
	OTP        string `json:"otp"`
}

type verifyResponse struct {
	Token  string        `json:"token"`
	Vendor models.Vendor `json:"vendor"`
}

// VerifyVendorOTP completes the login flow
// 200 — otp accepted, response carries the bearer token;
// 400 — missing code or otp;
// 409 — backend rejected the otp;
// 502 — admin backend unreachable.
func (ah *AuthHandler) VerifyVendorOTP() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req verifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.VendorCode == "" || req.OTP == "" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		res, err := ah.svc.Verify(r.Context(), req.VendorCode, req.OTP)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, verifyResponse{Token: res.Token, Vendor: res.Vendor})
	}
}

// LogoutVendor ends the session
// 200 — session removed;
// 401 — no valid session.
func (ah *AuthHandler) LogoutVendor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := ah.svc.Logout(r.Context(), sess.ID); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
