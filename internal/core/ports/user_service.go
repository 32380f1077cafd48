package ports

import (
	"context"

	"github.com/rentacar/rentacar-api/internal/core/domain"
)

// UserService defines account lookup and maintenance use cases.
type UserService interface {
	GetAll(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, page PageRequest) ([]*domain.User, int64, error)
	// UpdatePassword verifies oldPassword against the stored hash and replaces
	// it with a hash of newPassword. Built-in accounts are rejected.
	UpdatePassword(ctx context.Context, id, oldPassword, newPassword string) error
}
