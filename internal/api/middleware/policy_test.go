package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

var testPolicies = []RoutePolicy{
	{Prefix: "/api/v1/clients", Role: "admin"},
	{Prefix: "/api", Role: ""},
}

func runPolicy(t *testing.T, path string, roles []string) (int, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if roles != nil {
		c.Set(RolesKey, roles)
	}

	called := false
	mw := Authorize(testPolicies)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code, called
}

func TestAuthorize_AdminAllowedOnClients(t *testing.T) {
	code, called := runPolicy(t, "/api/v1/clients", []string{"admin"})
	if !called || code != http.StatusOK {
		t.Fatalf("expected pass-through, got code=%d called=%v", code, called)
	}
}

func TestAuthorize_InsufficientRoleOnClients(t *testing.T) {
	code, called := runPolicy(t, "/api/v1/clients/metrics", []string{"viewer"})
	if called {
		t.Fatalf("handler must not run")
	}
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuthorize_AnyAuthenticatedOnAPIPrefix(t *testing.T) {
	// Longest prefix wins: /api/v1/other falls under the catch-all policy
	// that accepts any authenticated principal.
	code, called := runPolicy(t, "/api/v1/other", []string{"viewer"})
	if !called || code != http.StatusOK {
		t.Fatalf("expected pass-through, got code=%d called=%v", code, called)
	}
}

func TestAuthorize_MissingClaims(t *testing.T) {
	code, called := runPolicy(t, "/api/v1/clients", nil)
	if called {
		t.Fatalf("handler must not run")
	}
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuthorize_UnmatchedPathPassesThrough(t *testing.T) {
	code, called := runPolicy(t, "/health", nil)
	if !called || code != http.StatusOK {
		t.Fatalf("unmatched path must pass untouched, got code=%d called=%v", code, called)
	}
}
