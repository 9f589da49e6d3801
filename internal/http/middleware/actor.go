package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MrJamesThe3rd/commissions/internal/access"
)

// Claims is the bearer token payload identifying the actor.
type Claims struct {
	OrgID        int64       `json:"org_id"`
	UserID       int64       `json:"user_id"`
	Role         access.Role `json:"role"`
	WorkspaceIDs []int64     `json:"workspace_ids,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) Scope() access.Scope {
	return access.Scope{
		OrgID:        c.OrgID,
		UserID:       c.UserID,
		Role:         c.Role,
		WorkspaceIDs: c.WorkspaceIDs,
	}
}

type contextKey string

const scopeKey contextKey = "scope"

func WithScope(ctx context.Context, scope access.Scope) context.Context {
	return context.WithValue(ctx, scopeKey, scope)
}

// ScopeFrom returns the actor stored by Actor.
func ScopeFrom(ctx context.Context) (access.Scope, bool) {
	scope, ok := ctx.Value(scopeKey).(access.Scope)
	return scope, ok
}

// Actor authenticates HS256 bearer tokens and stores the actor's scope in the request
// context. Requests without a valid token get 401.
func Actor(secret []byte) func(http.Handler) http.Handler {
	keyFunc := func(*jwt.Token) (any, error) { return secret, nil }

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			var claims Claims

			_, err := jwt.ParseWithClaims(raw, &claims, keyFunc, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			if claims.OrgID == 0 || claims.UserID == 0 {
				http.Error(w, "token has no org or user", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithScope(r.Context(), claims.Scope())))
		})
	}
}

// Sign issues a token for scope that Actor accepts until ttl elapses.
func Sign(secret []byte, scope access.Scope, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		OrgID:        scope.OrgID,
		UserID:       scope.UserID,
		Role:         scope.Role,
		WorkspaceIDs: scope.WorkspaceIDs,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
