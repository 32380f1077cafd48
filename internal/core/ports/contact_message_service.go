package ports

import (
	"context"

	"github.com/rentacar/rentacar-api/internal/core/domain"
)

// ContactMessageInput carries the writable fields of a contact message.
type ContactMessageInput struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// ContactMessageService defines inbox use cases.
type ContactMessageService interface {
	GetAll(ctx context.Context) ([]*domain.ContactMessage, error)
	GetByID(ctx context.Context, id string) (*domain.ContactMessage, error)
	Create(ctx context.Context, input ContactMessageInput) (*domain.ContactMessage, error)
	Update(ctx context.Context, id string, input ContactMessageInput) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page PageRequest) ([]*domain.ContactMessage, int64, error)
}
