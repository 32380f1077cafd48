package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/rentacar/rentacar-api/internal/core/domain"
	"github.com/rentacar/rentacar-api/internal/core/ports"
	"github.com/rentacar/rentacar-api/internal/pkg/metrics"
)

// LoginGuard abstracts the brute-force throttle (Redis).
type LoginGuard interface {
	// Allow reports whether another login attempt for email is permitted.
	Allow(ctx context.Context, email string) (bool, error)
	// RecordFailure counts a failed attempt for email.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the failure counter after a successful login.
	Reset(ctx context.Context, email string) error
}

// AuthService implements registration and login.
type AuthService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	tokens ports.TokenService
	guard  LoginGuard
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, roles ports.RoleRepository, tokens ports.TokenService, guard LoginGuard, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, roles: roles, tokens: tokens, guard: guard, logger: logger}
}

// Register creates a new account with the default customer role. The email
// existence check is a pre-check only; the store's unique index is the final
// arbiter for racing registrations.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) error {
	exists, err := s.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if exists {
		return domain.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("register: hash password: %w", err)
	}

	role, err := s.roles.FindByName(ctx, domain.RoleCustomer)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
		PhoneNumber:  input.PhoneNumber,
		Address:      input.Address,
		ZipCode:      input.ZipCode,
		Roles:        []domain.RoleName{role.Name},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	metrics.RegistrationsTotal.Inc()
	s.logger.Info().Str("email", input.Email).Msg("user registered")
	return nil
}

// Login verifies the credentials and issues a session token. A missing user
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if allowed, err := s.guard.Allow(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login guard check failed, allowing attempt")
	} else if !allowed {
		metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		return "", domain.ErrTooManyLogins
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("login: issue token: %w", err)
	}

	if err := s.guard.Reset(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("failed to reset login guard")
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
	if err := s.guard.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("failed to record login failure")
	}
}
