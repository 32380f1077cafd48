package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/rentacar/rentacar-api/internal/core/domain"
	"github.com/rentacar/rentacar-api/internal/core/ports"
	"github.com/rentacar/rentacar-api/internal/pkg/metrics"
)

// UserService implements account lookup and password maintenance.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) GetAll(ctx context.Context) ([]*domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, page ports.PageRequest) ([]*domain.User, int64, error) {
	return s.users.List(ctx, page)
}

// UpdatePassword replaces the stored hash after verifying the old password.
// Built-in accounts are protected from mutation.
func (s *UserService) UpdatePassword(ctx context.Context, id, oldPassword, newPassword string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if user.BuiltIn {
		metrics.PasswordUpdatesTotal.WithLabelValues("built_in").Inc()
		return domain.ErrBuiltInUser
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		metrics.PasswordUpdatesTotal.WithLabelValues("mismatch").Inc()
		return domain.ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("update password: hash: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, id, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	metrics.PasswordUpdatesTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", id).Msg("password updated")
	return nil
}
