package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pricelink/supplier-mapping-service/internal/auth"
)

type contextKey string

const adminUsernameKey contextKey = "admin_username"

// AdminAuth gates admin routes behind the admin_session cookie. The verified
// username is put on the request context for the ledger's decided_by field.
func AdminAuth(sessions *auth.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("admin_session")
			if err != nil {
				unauthorized(w)
				return
			}
			username, err := sessions.Verify(cookie.Value)
			if err != nil {
				unauthorized(w)
				return
			}
			ctx := context.WithValue(r.Context(), adminUsernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminFromContext returns the username set by AdminAuth, or "" outside it.
func AdminFromContext(ctx context.Context) string {
	username, _ := ctx.Value(adminUsernameKey).(string)
	return username
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   "UNAUTHORIZED",
		"message": "admin session required",
	})
}
