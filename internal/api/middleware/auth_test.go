package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/rentacar/rentacar-api/internal/core/domain"
	"github.com/rentacar/rentacar-api/internal/core/ports"
)

type stubTokenService struct {
	valid   string
	subject string
}

func (s *stubTokenService) Issue(_ string) (string, error) { return s.valid, nil }

func (s *stubTokenService) Validate(token string) bool { return token == s.valid }

func (s *stubTokenService) Subject(token string) (string, bool) {
	if token != s.valid || s.subject == "" {
		return "", false
	}
	return s.subject, true
}

type stubUserRepo struct {
	user *domain.User
}

func (r *stubUserRepo) Create(_ context.Context, _ *domain.User) (*domain.User, error) {
	return nil, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) { return nil, nil }

func (r *stubUserRepo) List(_ context.Context, _ ports.PageRequest) ([]*domain.User, int64, error) {
	return nil, 0, nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, _, _ string) error { return nil }

func runAuthenticate(t *testing.T, tokens ports.TokenService, users ports.UserRepository, path, authHeader string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(tokens, users, zerolog.Nop())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("authentication gate returned error: %v", err)
	}
	return c
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokens := &stubTokenService{valid: "good-token", subject: "user-1"}
	users := &stubUserRepo{user: &domain.User{ID: "user-1", Roles: []domain.RoleName{domain.RoleCustomer}}}

	c := runAuthenticate(t, tokens, users, "/users", "Bearer good-token")

	principal, ok := CurrentPrincipal(c)
	if !ok {
		t.Fatalf("expected principal after valid token")
	}
	if principal.UserID != "user-1" {
		t.Fatalf("unexpected principal: %+v", principal)
	}
	if !principal.HasRole(domain.RoleCustomer) {
		t.Fatalf("principal missing user roles: %+v", principal)
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokens := &stubTokenService{valid: "good-token", subject: "user-1"}
	c := runAuthenticate(t, tokens, &stubUserRepo{}, "/users", "")

	if _, ok := CurrentPrincipal(c); ok {
		t.Fatalf("expected no principal without a header")
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokens := &stubTokenService{valid: "good-token", subject: "user-1"}
	c := runAuthenticate(t, tokens, &stubUserRepo{}, "/users", "Bearer bad-token")

	// request proceeds, just unauthenticated
	if _, ok := CurrentPrincipal(c); ok {
		t.Fatalf("expected no principal for invalid token")
	}
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	tokens := &stubTokenService{valid: "good-token", subject: "ghost"}
	c := runAuthenticate(t, tokens, &stubUserRepo{}, "/users", "Bearer good-token")

	if _, ok := CurrentPrincipal(c); ok {
		t.Fatalf("expected no principal when the subject no longer exists")
	}
}

func TestAuthenticate_NonBearerScheme(t *testing.T) {
	tokens := &stubTokenService{valid: "good-token", subject: "user-1"}
	users := &stubUserRepo{user: &domain.User{ID: "user-1"}}
	c := runAuthenticate(t, tokens, users, "/users", "Basic good-token")

	if _, ok := CurrentPrincipal(c); ok {
		t.Fatalf("expected no principal for non-bearer scheme")
	}
}

func TestAuthenticate_CaseInsensitiveScheme(t *testing.T) {
	tokens := &stubTokenService{valid: "good-token", subject: "user-1"}
	users := &stubUserRepo{user: &domain.User{ID: "user-1"}}
	c := runAuthenticate(t, tokens, users, "/users", "bearer good-token")

	if _, ok := CurrentPrincipal(c); !ok {
		t.Fatalf("expected principal for lowercase bearer scheme")
	}
}

func TestAuthenticate_SkipPath(t *testing.T) {
	tokens := &stubTokenService{valid: "good-token", subject: "user-1"}
	users := &stubUserRepo{user: &domain.User{ID: "user-1"}}

	// the gate does not touch the token on skip paths
	c := runAuthenticate(t, tokens, users, "/login", "Bearer good-token")
	if _, ok := CurrentPrincipal(c); ok {
		t.Fatalf("expected no principal on skip path")
	}
}
