package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rxmart/vendormart/internal/models"
)

var ErrInvalidToken = errors.New("invalid auth token")

// AuthToken mints and verifies the gateway's bearer tokens
type AuthToken struct {
	key []byte
	ttl time.Duration
}

// NewAuthToken creates new AuthToken instance
func NewAuthToken(key []byte, ttl time.Duration) *AuthToken {
	return &AuthToken{key: key, ttl: ttl}
}

type tokenClaims struct {
	VendorID string `json:"vendor_id"`
	jwt.RegisteredClaims
}

// CreateToken issues a token bound to a stored session
func (at *AuthToken) CreateToken(sess *models.Session) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		VendorID: sess.VendorID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(at.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(at.key)
}

// VerifyToken validates a token string and extracts its payload
func (at *AuthToken) VerifyToken(tokenString string) (*models.TokenPayload, error) {
	claims := tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return at.key, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	payload := models.TokenPayload{
		SessionID: claims.ID,
		VendorID:  claims.VendorID,
	}
	if claims.ExpiresAt != nil {
		payload.ExpiresAt = claims.ExpiresAt.Time
	}

	return &payload, nil
}
