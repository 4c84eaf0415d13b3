package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bahm1979/gestion-locative-backend/internal/utils"
)

type contextKey string

// ContextKeyUser holds the *Claims of the authenticated caller.
const ContextKeyUser = contextKey("user")

// AuthMiddleware gates every protected route. The token is read from
// "Authorization: Bearer ...". Missing, invalid and expired tokens each
// get their own 401 message.
func AuthMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := extractBearerToken(r)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, "Aucun token fourni")
				return
			}

			claims, vErr := ValidateToken(tokenStr, secret)
			if vErr != nil {
				if errors.Is(vErr, ErrTokenExpired) {
					utils.RespondError(w, http.StatusUnauthorized, "Token expiré")
					return
				}
				utils.RespondError(w, http.StatusUnauthorized, "Token invalide")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated claims, or nil outside the
// middleware.
func UserFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(ContextKeyUser).(*Claims)
	return claims
}

func extractBearerToken(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", errors.New("missing Authorization header")
	}
	return strings.TrimPrefix(h, "Bearer "), nil
}
