package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/rentacar/rentacar-api/internal/core/domain"
	"github.com/rentacar/rentacar-api/internal/core/ports"
	"github.com/rentacar/rentacar-api/internal/pkg/metrics"
)

// ContactMessageService implements the visitor inbox use cases.
type ContactMessageService struct {
	repo   ports.ContactMessageRepository
	logger zerolog.Logger
}

func NewContactMessageService(repo ports.ContactMessageRepository, logger zerolog.Logger) *ContactMessageService {
	return &ContactMessageService{repo: repo, logger: logger}
}

func (s *ContactMessageService) GetAll(ctx context.Context) ([]*domain.ContactMessage, error) {
	return s.repo.FindAll(ctx)
}

func (s *ContactMessageService) GetByID(ctx context.Context, id string) (*domain.ContactMessage, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ContactMessageService) Create(ctx context.Context, input ports.ContactMessageInput) (*domain.ContactMessage, error) {
	now := time.Now().UTC()
	msg := &domain.ContactMessage{
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Body:      input.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}

	metrics.ContactMessagesCreatedTotal.Inc()
	s.logger.Info().Str("email", input.Email).Msg("contact message created")
	return created, nil
}

func (s *ContactMessageService) Update(ctx context.Context, id string, input ports.ContactMessageInput) error {
	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	msg.Name = input.Name
	msg.Email = input.Email
	msg.Subject = input.Subject
	msg.Body = input.Body
	msg.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, msg); err != nil {
		return fmt.Errorf("update contact message: %w", err)
	}
	return nil
}

func (s *ContactMessageService) Delete(ctx context.Context, id string) error {
	// lookup first so a missing id surfaces as not found, not a silent no-op
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *ContactMessageService) List(ctx context.Context, page ports.PageRequest) ([]*domain.ContactMessage, int64, error) {
	return s.repo.List(ctx, page)
}
