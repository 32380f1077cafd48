package ports

import (
	"context"

	"github.com/rentacar/rentacar-api/internal/core/domain"
)

// ContactMessageRepository defines persistence operations for the inbox.
type ContactMessageRepository interface {
	Create(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error)
	FindByID(ctx context.Context, id string) (*domain.ContactMessage, error)
	FindAll(ctx context.Context) ([]*domain.ContactMessage, error)
	Update(ctx context.Context, m *domain.ContactMessage) error
	Delete(ctx context.Context, id string) error
	// List returns a page of messages matching page and the total count.
	List(ctx context.Context, page PageRequest) ([]*domain.ContactMessage, int64, error)
}
