package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/codewithsreyash/CivicSetu/internal/domain"

	"github.com/google/uuid"
)

type ctxKey string

const identityKey ctxKey = "identity"

// Identity trusts the gateway-set headers. Authentication itself happens
// upstream; this layer only turns the headers into a domain.Identity.
func Identity(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := uuid.Parse(r.Header.Get("X-User-Id"))
			if err != nil {
				logger.Warn("missing or invalid X-User-Id", slog.String("remote", r.RemoteAddr))
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			role := domain.Role(r.Header.Get("X-User-Role"))
			if !role.Valid() {
				logger.Warn("invalid X-User-Role", slog.String("role", string(role)))
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			caller := domain.Identity{
				ID:         id,
				Role:       role,
				Department: r.Header.Get("X-User-Department"),
			}

			ctx := context.WithValue(r.Context(), identityKey, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	caller, ok := ctx.Value(identityKey).(domain.Identity)
	return caller, ok
}

// WithIdentity is a test helper placing a caller into the context the
// same way the middleware does.
func WithIdentity(ctx context.Context, caller domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, caller)
}

// RequireRole gates a subtree to the given roles. Identity must already
// be on the context.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := IdentityFromContext(r.Context())
			if !ok {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			if _, ok := allowed[caller.Role]; !ok {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
