package ports

import "context"

// RegisterInput carries all data needed to create a new account.
type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	PhoneNumber string
	Address     string
	ZipCode     string
}

// AuthService defines registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) error
	// Login verifies the credentials and returns a signed session token.
	Login(ctx context.Context, email, password string) (string, error)
}
