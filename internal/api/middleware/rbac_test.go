package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/rentacar/rentacar-api/internal/core/domain"
)

func runRequireRoles(t *testing.T, principal *domain.Principal, allowed ...domain.RoleName) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/auth/all", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		c.Set(principalKey, *principal)
	}

	handler := RequireRoles(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != want {
		t.Fatalf("expected status %d, got %d", want, httpErr.Code)
	}
}

func TestRequireRoles_Allowed(t *testing.T) {
	principal := &domain.Principal{UserID: "user-1", Roles: []domain.RoleName{domain.RoleAdmin}}

	if err := runRequireRoles(t, principal, domain.RoleAdmin); err != nil {
		t.Fatalf("expected admin to pass, got %v", err)
	}
}

func TestRequireRoles_AnyOfMultiple(t *testing.T) {
	principal := &domain.Principal{UserID: "user-1", Roles: []domain.RoleName{domain.RoleCustomer}}

	if err := runRequireRoles(t, principal, domain.RoleAdmin, domain.RoleCustomer); err != nil {
		t.Fatalf("expected customer to pass a customer-or-admin gate, got %v", err)
	}
}

func TestRequireRoles_Forbidden(t *testing.T) {
	principal := &domain.Principal{UserID: "user-1", Roles: []domain.RoleName{domain.RoleCustomer}}

	err := runRequireRoles(t, principal, domain.RoleAdmin)
	assertHTTPStatus(t, err, http.StatusForbidden)
}

func TestRequireRoles_NoPrincipal(t *testing.T) {
	err := runRequireRoles(t, nil, domain.RoleAdmin)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestRequireRoles_PrincipalWithoutRoles(t *testing.T) {
	principal := &domain.Principal{UserID: "user-1"}

	err := runRequireRoles(t, principal, domain.RoleCustomer)
	assertHTTPStatus(t, err, http.StatusForbidden)
}
