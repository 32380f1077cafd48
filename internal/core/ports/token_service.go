package ports

// TokenService issues and validates stateless session tokens.
type TokenService interface {
	// Issue produces a signed token whose subject is the given user id.
	Issue(userID string) (string, error)
	// Validate reports whether the token's signature verifies and it has not
	// expired. It never returns an error; every failure mode is "invalid".
	Validate(token string) bool
	// Subject returns the user id carried in the token's subject claim.
	// ok is false when the token cannot be parsed; callers must treat that
	// as "proceed unauthenticated", not as a fatal condition.
	Subject(token string) (userID string, ok bool)
}
