package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/google/uuid"

	"github.com/codewithsreyash/CivicSetu/internal/domain"
	"github.com/codewithsreyash/CivicSetu/internal/middleware"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestIdentity_ValidHeaders_PlacesCallerOnContext(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	var got domain.Identity
	var ok bool

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = middleware.IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	h := middleware.Identity(newTestLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-Id", userID.String())
	req.Header.Set("X-User-Role", "department_staff")
	req.Header.Set("X-User-Department", "Roads")
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	if !ok {
		t.Fatalf("identity missing from context")
	}
	if got.ID != userID || got.Role != domain.RoleDepartmentStaff || got.Department != "Roads" {
		t.Fatalf("unexpected identity: %+v", got)
	}
}

func TestIdentity_MissingUserID_401(t *testing.T) {
	t.Parallel()

	h := middleware.Identity(newTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("next handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-Role", "citizen")
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestIdentity_UnknownRole_401(t *testing.T) {
	t.Parallel()

	h := middleware.Identity(newTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("next handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-Id", uuid.New().String())
	req.Header.Set("X-User-Role", "superuser")
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestRequireRole_GatesByRole(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := middleware.RequireRole(domain.RoleAdmin, domain.RoleDepartmentStaff)(next)

	cases := []struct {
		role domain.Role
		want int
	}{
		{domain.RoleAdmin, http.StatusOK},
		{domain.RoleDepartmentStaff, http.StatusOK},
		{domain.RoleCitizen, http.StatusForbidden},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(middleware.WithIdentity(req.Context(), domain.Identity{ID: uuid.New(), Role: tc.role}))
		rr := httptest.NewRecorder()

		h.ServeHTTP(rr, req)

		if rr.Code != tc.want {
			t.Fatalf("role %s: expected %d got %d", tc.role, tc.want, rr.Code)
		}
	}
}

func TestRequireRole_NoIdentity_401(t *testing.T) {
	t.Parallel()

	h := middleware.RequireRole(domain.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("next handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d", http.StatusUnauthorized, rr.Code)
	}
}
