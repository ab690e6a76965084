package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rxmart/vendormart/internal/backend"
	"github.com/rxmart/vendormart/internal/models"
	"go.uber.org/zap"
)

// AuthBackend is the slice of the admin API used by the login flow
type AuthBackend interface {
	// Login resolves a mobile number to the vendor code
	Login(ctx context.Context, mobile string) (string, error)
	// SendOTP dispatches an OTP to the vendor's mobile
	SendOTP(ctx context.Context, code string) error
	// VerifyOTP checks the OTP and returns the vendor profile
	VerifyOTP(ctx context.Context, code, otp string) (*backend.VendorRecord, error)
}

// SessionStore is interface for persisting vendor sessions
type SessionStore interface {
	Save(ctx context.Context, sess *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

// AuthResult is a completed login: a bearer token plus the vendor profile
type AuthResult struct {
	Token  string
	Vendor models.Vendor
}

// AuthService implements the mobile+OTP login flow against the admin backend
type AuthService struct {
	backend  AuthBackend
	sessions SessionStore
	token    TokenService
	logger   *zap.Logger
}

// NewAuthService creates new AuthService instance
func NewAuthService(backend AuthBackend, sessions SessionStore, token TokenService, logger *zap.Logger) *AuthService {
	return &AuthService{
		backend:  backend,
		sessions: sessions,
		token:    token,
		logger:   logger,
	}
}

// Login starts the flow: resolves the mobile number to a vendor code and
// asks the backend to send an OTP to it. Returns the vendor code the client
// must echo back on verification.
func (as *AuthService) Login(ctx context.Context, mobile string) (string, error) {
	code, err := as.backend.Login(ctx, mobile)
	if err != nil {
		return "", err
	}

	if err := as.backend.SendOTP(ctx, code); err != nil {
		return "", err
	}

	as.logger.Info("otp sent", zap.String("vendor", code))

	return code, nil
}

// Verify completes the flow: checks the OTP, persists a session and mints a
// bearer token.
func (as *AuthService) Verify(ctx context.Context, code, otp string) (*AuthResult, error) {
	rec, err := as.backend.VerifyOTP(ctx, code, otp)
	if err != nil {
		return nil, err
	}

	sess := &models.Session{
		ID:        uuid.NewString(),
		VendorID:  string(rec.M1Code),
		Name:      rec.M1Name,
		Mobile:    rec.M1Tel,
		CreatedAt: time.Now(),
	}

	if err := as.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	token, err := as.token.CreateToken(sess)
	if err != nil {
		return nil, err
	}

	as.logger.Info("vendor logged in", zap.String("vendor", sess.VendorID))

	return &AuthResult{Token: token, Vendor: vendorFromRecord(rec, "")}, nil
}

// Logout ends the session
func (as *AuthService) Logout(ctx context.Context, sessionID string) error {
	return as.sessions.Delete(ctx, sessionID)
}
