package ports

import (
	"context"

	"github.com/rentacar/rentacar-api/internal/core/domain"
)

// PageRequest carries pagination parameters for list queries.
// Page is zero-based; handlers convert from the 1-based external form.
type PageRequest struct {
	Page       int
	Size       int
	Sort       string
	Descending bool
}

// Offset returns the number of rows to skip for this page.
func (p PageRequest) Offset() int64 {
	if p.Page < 0 {
		return 0
	}
	return int64(p.Page) * int64(p.Size)
}

// UserRepository defines persistence operations for user accounts.
// The store enforces email uniqueness; Create returns domain.ErrEmailExists
// on a duplicate regardless of any pre-check done by callers.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	// List returns a page of users matching page and the total count.
	List(ctx context.Context, page PageRequest) ([]*domain.User, int64, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

// RoleRepository defines read access to the seeded role reference data.
type RoleRepository interface {
	FindByName(ctx context.Context, name domain.RoleName) (*domain.Role, error)
}
