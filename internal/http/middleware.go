package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/qbyten/site-api/internal/auth"
)

type contextKey string

const usernameKey = contextKey("username")

// publicPaths can be read without credentials.
var publicPaths = map[string]bool{
	"/api/health":   true,
	"/api/products": true,
	"/api/services": true,
	"/api/settings": true,
	"/api/menus":    true,
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Admin-Token")
}

// AuthGate decides ALLOW or REJECT before any handler runs. Preflight and
// public reads pass straight through; the auth endpoints are themselves the
// authentication mechanism; everything else needs a valid session token.
func AuthGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setCORSHeaders(w)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		isPublicGet := r.Method == http.MethodGet && publicPaths[r.URL.Path]
		isAuthEndpoint := strings.HasPrefix(r.URL.Path, "/api/auth/")
		if isPublicGet || isAuthEndpoint {
			next.ServeHTTP(w, r)
			return
		}

		authorization := r.Header.Get("Authorization")
		if authorization == "" {
			// raw-token fallback used by the admin dashboard
			authorization = r.Header.Get("X-Admin-Token")
		}
		if authorization == "" {
			rejectUnauthorized(w, "Authentication required")
			return
		}

		_, claims, err := auth.TokenClaims(authorization)
		if err != nil {
			if auth.IsExpired(err) {
				rejectUnauthorized(w, "Token expired")
				return
			}
			rejectUnauthorized(w, "Invalid token")
			return
		}

		username, _ := claims["username"].(string)
		ctx := context.WithValue(r.Context(), usernameKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Username returns the authenticated admin's username, if any.
func Username(r *http.Request) string {
	if val, ok := r.Context().Value(usernameKey).(string); ok {
		return val
	}
	return ""
}

func rejectUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
