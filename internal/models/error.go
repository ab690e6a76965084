package models

import "errors"

var (
	ErrDataNotFound       = errors.New("data not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidCredentials = errors.New("invalid mobile number or otp")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidTransition  = errors.New("invalid order state transition")
	ErrTransitionInFlight = errors.New("another transition is already in flight")
	ErrInvalidAmount      = errors.New("invalid withdrawal amount")
	ErrInsufficientFunds  = errors.New("withdrawal amount exceeds available balance")
	ErrBackendUnavailable = errors.New("admin backend unavailable")
)

// BackendRejectionError is returned when the admin backend answered with a
// well-formed envelope whose response field is not "success". The message is
// surfaced to the vendor verbatim.
type BackendRejectionError struct {
	Message string
}

func (e *BackendRejectionError) Error() string {
	if e.Message == "" {
		return "backend rejected the request"
	}
	return e.Message
}

// NewBackendRejectionError creates new BackendRejectionError
func NewBackendRejectionError(message string) *BackendRejectionError {
	return &BackendRejectionError{Message: message}
}
