package middleware

import (
	"context"
	"net/http"
	"strings"

	"decor-backend/internal/auth"
	"decor-backend/internal/store"
)

type contextKey string

const TokenKey contextKey = "token"

// ClientIDHeader carries the caller's self-assigned instance id. Writes made
// with this id are not echoed back to the same client over the change feed.
const ClientIDHeader = "X-Client-ID"

type AuthMiddleware struct {
	sessions *auth.SessionManager
}

func NewAuthMiddleware(sessions *auth.SessionManager) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate validates the bearer token against the stored session and
// slides the session expiry forward. An expired session is removed by the
// check itself, so the second failed request sees no session at all.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header required", http.StatusUnauthorized)
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "Invalid authorization format", http.StatusUnauthorized)
			return
		}

		token := parts[1]
		if _, ok := m.sessions.Validate(r.Context(), token); !ok {
			http.Error(w, "Invalid or expired session", http.StatusUnauthorized)
			return
		}
		m.sessions.Touch(r.Context(), token)

		ctx := context.WithValue(r.Context(), TokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetTokenFromContext extracts the bearer token from request context
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}

// ClientOrigin tags the request context with the caller's client id so
// store writes carry it into change notifications.
func ClientOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := r.Header.Get(ClientIDHeader); id != "" {
			r = r.WithContext(store.WithOrigin(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}
