package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-notes-api/internal/model"
)

type accessVerifier interface {
	VerifyAccessToken(tokenString string) (model.Identity, error)
}

type contextKey string

const identityContextKey contextKey = "identity"

// AuthMiddleware is the access guard. It runs before every handler that
// assumes an authenticated identity.
type AuthMiddleware struct {
	verifier accessVerifier
}

func NewAuthMiddleware(verifier accessVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth rejects requests without a bearer token (401) or with a
// token that fails verification (403), and attaches the decoded identity
// to the request context otherwise.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing or malformed authorization header")
			return
		}

		token := strings.TrimSpace(header[len("bearer "):])
		identity, err := m.verifier.VerifyAccessToken(token)
		if err != nil {
			writeAuthError(w, http.StatusForbidden, "FORBIDDEN", "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles gates a route to identities holding at least one of the
// given roles. It must run after RequireAuth.
func (m *AuthMiddleware) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
				return
			}

			if !identity.HasAnyRole(roles...) {
				writeAuthError(w, http.StatusForbidden, "FORBIDDEN", "insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func IdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(model.Identity)
	return identity, ok
}

func writeAuthError(w http.ResponseWriter, status int, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = jsonEncode(w, model.APIResponse{
		Success: false,
		Error: &model.APIError{
			Code:    code,
			Message: message,
		},
	})
}
