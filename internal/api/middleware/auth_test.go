package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hunter122526/quantum2017/internal/core/domain"
	"github.com/hunter122526/quantum2017/internal/core/token"
)

type stubRevoker struct {
	revoked map[string]bool
	err     error
}

func (s *stubRevoker) Revoke(_ context.Context, raw string, _ time.Time) error {
	if s.revoked == nil {
		s.revoked = map[string]bool{}
	}
	s.revoked[raw] = true
	return nil
}

func (s *stubRevoker) IsRevoked(_ context.Context, raw string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.revoked[raw], nil
}

func invoke(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return c, mw(next)(c)
}

func issue(t *testing.T, tokens *token.Service, role string) string {
	t.Helper()
	raw, err := tokens.Issue(&domain.User{ID: "u-1", Email: "a@x.com", Role: role})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return raw
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	raw := issue(t, tokens, domain.RoleUser)

	c, err := invoke(t, Auth(tokens, &stubRevoker{}), "Bearer "+raw)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	claims, ok := c.Get(CtxClaims).(*token.Claims)
	if !ok || claims.UserID != "u-1" {
		t.Fatalf("expected claims in context, got %+v", c.Get(CtxClaims))
	}
	if got := c.Get(CtxRawToken); got != raw {
		t.Fatalf("expected raw token in context, got %v", got)
	}
	if got := c.Get(CtxRole); got != domain.RoleUser {
		t.Fatalf("expected role in context, got %v", got)
	}
}

func TestAuth_Rejections(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	other := token.NewService("other-secret", time.Hour)
	revoked := issue(t, tokens, domain.RoleUser)

	revoker := &stubRevoker{revoked: map[string]bool{revoked: true}}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + issue(t, other, domain.RoleUser)},
		{"revoked token", "Bearer " + revoked},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := invoke(t, Auth(tokens, revoker), tc.header)

			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %v", err)
			}
		})
	}
}

func TestAuth_BearerCaseInsensitive(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	raw := issue(t, tokens, domain.RoleUser)

	if _, err := invoke(t, Auth(tokens, &stubRevoker{}), "bearer "+raw); err != nil {
		t.Fatalf("expected lowercase scheme to be accepted, got %v", err)
	}
}

// A revocation store outage is an infrastructure failure, not an auth
// verdict: it must reach the central error handler unchanged instead of
// de-authenticating the request with the store's error text.
func TestAuth_RevocationStoreOutage(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	raw := issue(t, tokens, domain.RoleUser)
	storeErr := errors.New("revocation check: connection refused")

	_, err := invoke(t, Auth(tokens, &stubRevoker{err: storeErr}), "Bearer "+raw)
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected the store error to propagate, got %v", err)
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		t.Fatalf("store outage must not map to an auth status, got %d", he.Code)
	}
}

func TestAdminOnly_RevocationStoreOutage(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	raw := issue(t, tokens, domain.RoleAdmin)
	storeErr := errors.New("revocation check: connection refused")

	_, err := invoke(t, AdminOnly(tokens, &stubRevoker{err: storeErr}), "Bearer "+raw)
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected the store error to propagate, got %v", err)
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		t.Fatalf("store outage must not map to 403, got %d", he.Code)
	}
}

func TestAdminOnly_Admin(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	raw := issue(t, tokens, domain.RoleAdmin)

	c, err := invoke(t, AdminOnly(tokens, &stubRevoker{}), "Bearer "+raw)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got := c.Get(CtxRole); got != domain.RoleAdmin {
		t.Fatalf("expected admin role in context, got %v", got)
	}
}

// Every admin-surface failure is reported the same way, so callers cannot
// distinguish a bad credential from an insufficient one.
func TestAdminOnly_UniformForbidden(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	revokedAdmin := issue(t, tokens, domain.RoleAdmin)
	revoker := &stubRevoker{revoked: map[string]bool{revokedAdmin: true}}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"garbage token", "Bearer nope"},
		{"non-admin role", "Bearer " + issue(t, tokens, domain.RoleUser)},
		{"revoked admin token", "Bearer " + revokedAdmin},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := invoke(t, AdminOnly(tokens, revoker), tc.header)

			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusForbidden {
				t.Fatalf("expected 403, got %v", err)
			}
			if he.Message != domain.ErrForbidden.Error() {
				t.Fatalf("expected identical message across failures, got %v", he.Message)
			}
		})
	}
}
