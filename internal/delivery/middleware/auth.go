package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/Jachacon12/arquitectura-de-servidores/internal/infrastructure"
)

type contextKey string

const userIDKey contextKey = "userID"

// TokenCache resolves an issued access token to its user id. Entries only
// ever come from login, with a TTL matching the token, so a hit is as
// trustworthy as a signature check.
type TokenCache interface {
	GetToken(ctx context.Context, token string) (string, error)
}

// Auth extracts and validates a bearer token, consulting the cache before
// falling back to signature verification. Expired and forged tokens get the
// same opaque 401; the distinction only reaches the log.
func Auth(jwtService *infrastructure.JWTService, cache TokenCache) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "No Authorization header, authorization denied")
				return
			}

			parts := strings.Fields(authHeader)
			if len(parts) < 2 || parts[1] == "" {
				unauthorized(w, "No token, authorization denied")
				return
			}
			token := parts[1]

			if cache != nil {
				if userID, err := cache.GetToken(r.Context(), token); err == nil && userID != "" {
					ctx := context.WithValue(r.Context(), userIDKey, userID)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			userID, err := jwtService.ParseToken(token)
			if err != nil {
				log.Printf("Token verification failed: %v", err)
				unauthorized(w, "Token is not valid")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the identity attached by Auth.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
