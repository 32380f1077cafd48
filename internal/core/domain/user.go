package domain

import (
	"errors"
	"time"
)

// RoleName is the closed set of roles a user can hold.
type RoleName string

const (
	RoleCustomer RoleName = "ROLE_CUSTOMER"
	RoleAdmin    RoleName = "ROLE_ADMIN"
)

// DisplayName returns the human-readable role label used in API responses.
func (r RoleName) DisplayName() string {
	if r == RoleAdmin {
		return "Administrator"
	}
	return "Customer"
}

var ErrUserNotFound = errors.New("user not found")
var ErrEmailExists = errors.New("email already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrPasswordMismatch = errors.New("password mismatch")
var ErrBuiltInUser = errors.New("built-in user cannot be modified")
var ErrRoleNotFound = errors.New("role not found")
var ErrTooManyLogins = errors.New("too many login attempts")

// Role is a static reference entity, seeded once and read-only at runtime.
type Role struct {
	ID   string   `json:"id"`
	Name RoleName `json:"name"`
}

// User models a registered account.
type User struct {
	ID           string     `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	PhoneNumber  string     `json:"phone_number"`
	Address      string     `json:"address"`
	ZipCode      string     `json:"zip_code"`
	BuiltIn      bool       `json:"built_in"`
	Roles        []RoleName `json:"roles"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(name RoleName) bool {
	for _, r := range u.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// Principal is the authenticated identity attached to a request by the
// authentication middleware. It is request-scoped and never shared.
type Principal struct {
	UserID string
	Roles  []RoleName
}

// HasRole reports whether the principal holds the given role.
func (p Principal) HasRole(name RoleName) bool {
	for _, r := range p.Roles {
		if r == name {
			return true
		}
	}
	return false
}
