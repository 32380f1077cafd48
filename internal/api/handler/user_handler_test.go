package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/rentacar/rentacar-api/internal/core/domain"
	"github.com/rentacar/rentacar-api/internal/core/ports"
)

type stubUserService struct {
	users       []*domain.User
	updateErr   error
	lastUpdated struct {
		id, oldPassword, newPassword string
	}
	lastPage ports.PageRequest
}

func (s *stubUserService) GetAll(_ context.Context) ([]*domain.User, error) {
	return s.users, nil
}

func (s *stubUserService) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserService) List(_ context.Context, page ports.PageRequest) ([]*domain.User, int64, error) {
	s.lastPage = page
	return s.users, int64(len(s.users)), nil
}

func (s *stubUserService) UpdatePassword(_ context.Context, id, oldPassword, newPassword string) error {
	s.lastUpdated.id = id
	s.lastUpdated.oldPassword = oldPassword
	s.lastUpdated.newPassword = newPassword
	return s.updateErr
}

func testUser(id string) *domain.User {
	return &domain.User{
		ID:          id,
		FirstName:   "Alice",
		LastName:    "Smith",
		Email:       "alice@example.com",
		PhoneNumber: "(555) 123-4567",
		Address:     "1 Main St",
		ZipCode:     "12345",
		Roles:       []domain.RoleName{domain.RoleCustomer},
	}
}

func TestUserHandler_GetOwn(t *testing.T) {
	svc := &stubUserService{users: []*domain.User{testUser("user-1")}}
	h := NewUserHandler(svc)
	c, rec := newTestContext(http.MethodGet, "/users", "")
	c.Set("principal", domain.Principal{UserID: "user-1", Roles: []domain.RoleName{domain.RoleCustomer}})

	if err := h.GetOwn(c); err != nil {
		t.Fatalf("GetOwn returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "user-1" || resp.Email != "alice@example.com" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.Roles) != 1 || resp.Roles[0] != "Customer" {
		t.Fatalf("expected display role Customer, got %v", resp.Roles)
	}
}

func TestUserHandler_GetOwn_NoPrincipal(t *testing.T) {
	h := NewUserHandler(&stubUserService{})
	c, _ := newTestContext(http.MethodGet, "/users", "")

	err := h.GetOwn(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestUserHandler_GetByID_NotFound(t *testing.T) {
	h := NewUserHandler(&stubUserService{})
	c, _ := newTestContext(http.MethodGet, "/users/missing/auth", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.GetByID(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_UpdatePassword(t *testing.T) {
	svc := &stubUserService{}
	h := NewUserHandler(svc)
	c, rec := newTestContext(http.MethodPatch, "/users/auth", `{"oldPassword":"oldpass","newPassword":"newpass"}`)
	c.Set("principal", domain.Principal{UserID: "user-1"})

	if err := h.UpdatePassword(c); err != nil {
		t.Fatalf("UpdatePassword returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// the id comes from the principal, never from the payload
	if svc.lastUpdated.id != "user-1" {
		t.Fatalf("expected principal id, got %q", svc.lastUpdated.id)
	}
	if svc.lastUpdated.oldPassword != "oldpass" || svc.lastUpdated.newPassword != "newpass" {
		t.Fatalf("unexpected passwords forwarded: %+v", svc.lastUpdated)
	}
}

func TestUserHandler_UpdatePassword_ShortPassword(t *testing.T) {
	h := NewUserHandler(&stubUserService{})
	c, _ := newTestContext(http.MethodPatch, "/users/auth", `{"oldPassword":"oldpass","newPassword":"abc"}`)
	c.Set("principal", domain.Principal{UserID: "user-1"})

	assertBadRequest(t, h.UpdatePassword(c))
}

func TestUserHandler_UpdatePassword_BuiltIn(t *testing.T) {
	h := NewUserHandler(&stubUserService{updateErr: domain.ErrBuiltInUser})
	c, _ := newTestContext(http.MethodPatch, "/users/auth", `{"oldPassword":"oldpass","newPassword":"newpass"}`)
	c.Set("principal", domain.Principal{UserID: "admin-1"})

	if err := h.UpdatePassword(c); !errors.Is(err, domain.ErrBuiltInUser) {
		t.Fatalf("expected ErrBuiltInUser, got %v", err)
	}
}

func TestUserHandler_GetPage(t *testing.T) {
	svc := &stubUserService{users: []*domain.User{testUser("user-1"), testUser("user-2")}}
	h := NewUserHandler(svc)
	c, rec := newTestContext(http.MethodGet, "/users/auth/pages?page=2&size=10&sort=email&direction=ASC", "")

	if err := h.GetPage(c); err != nil {
		t.Fatalf("GetPage returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	want := ports.PageRequest{Page: 1, Size: 10, Sort: "email", Descending: false}
	if svc.lastPage != want {
		t.Fatalf("expected page request %+v, got %+v", want, svc.lastPage)
	}
}
