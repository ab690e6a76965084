package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rxmart/vendormart/internal/models"
)

type contextKey int

const (
	contextKeySession contextKey = iota
)

// TokenService verifies gateway bearer tokens
type TokenService interface {
	VerifyToken(tokenString string) (*models.TokenPayload, error)
}

// SessionStore resolves token payloads to stored sessions
type SessionStore interface {
	Get(ctx context.Context, id string) (*models.Session, error)
}

// Auth validates the bearer token, resolves the session and stores it in the
// request context.
func Auth(ts TokenService, sessions SessionStore) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			payload, err := ts.VerifyToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			sess, err := sessions.Get(r.Context(), payload.SessionID)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), contextKeySession, sess)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext extracts the authenticated session from context
func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	sess, ok := ctx.Value(contextKeySession).(*models.Session)
	return sess, ok
}

// WithSession returns a context carrying a session. Used by handler tests.
func WithSession(ctx context.Context, sess *models.Session) context.Context {
	return context.WithValue(ctx, contextKeySession, sess)
}
