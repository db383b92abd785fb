package http

import (
	"net/http"
	"strings"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/security"
)

type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tm security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tm}
}

// Authenticate validates the bearer token and injects the actor into the
// request context. Requests without a valid token are rejected before any
// handler runs.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := extractBearerToken(r)
		if err != nil {
			writeError(w, err)
			return
		}
		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			writeError(w, domain.ErrUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(withActor(r.Context(), claims)))
	})
}

// RequireAdmin gates administrative mutation endpoints on the actor's role.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := ActorFromContext(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		if !actor.IsAdmin() {
			writeError(w, domain.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", domain.ErrUnauthorized
	}
	if len(header) > 7 && strings.EqualFold(header[0:7], "Bearer ") {
		return header[7:], nil
	}
	return "", domain.ErrUnauthorized
}
