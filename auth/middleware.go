package auth

import (
	"net/http"
	"strings"

	"github.com/user/articlehub-go/apperror"
)

// RequireAuth returns middleware that authenticates requests with a bearer
// token. It extracts the token from the Authorization header, verifies it via
// the issuer, and attaches the principal's user id to the request context.
// Any failure rejects the request with 401; the middleware performs no
// resource-specific checks.
func RequireAuth(issuer *TokenIssuer) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, apperror.NewAuthError("Authorization header is missing", nil))
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				WriteError(w, r, apperror.NewAuthError("Authorization header format must be Bearer {token}", nil))
				return
			}

			claims, err := issuer.Verify(parts[1])
			if err != nil {
				WriteError(w, r, apperror.NewAuthError("Invalid token", err))
				return
			}

			ctx := NewContextWithUserID(r.Context(), claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
