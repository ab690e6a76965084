package models

import "time"

// Session is the persisted vendor identity. It is the only piece of client
// state that survives between requests; everything else is re-fetched from
// the admin backend.
type Session struct {
	ID        string    `json:"id"`
	VendorID  string    `json:"vendor_id"`
	Name      string    `json:"name"`
	Mobile    string    `json:"mobile"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenPayload is the claims carried by a gateway bearer token
type TokenPayload struct {
	SessionID string
	VendorID  string
	ExpiresAt time.Time
}
