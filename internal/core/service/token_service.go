package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/rentacar/rentacar-api/internal/pkg/metrics"
)

// TokenService implements stateless HMAC-signed session tokens.
// Validity is fully determined by signature and expiry; nothing is persisted.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	logger zerolog.Logger
}

func NewTokenService(secret string, ttl time.Duration, logger zerolog.Logger) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, logger: logger}
}

// Issue produces a signed token carrying the user id as subject.
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate reports whether the token is well-formed, correctly signed, and
// not expired. All failure modes are uniformly "invalid"; none is an error.
func (s *TokenService) Validate(token string) bool {
	if _, err := s.parse(token); err != nil {
		s.logger.Debug().Err(err).Msg("token rejected")
		metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
		return false
	}
	metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()
	return true
}

// Subject returns the user id carried in the token. ok is false on any parse
// or verification failure.
func (s *TokenService) Subject(token string) (string, bool) {
	claims, err := s.parse(token)
	if err != nil || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}

func (s *TokenService) parse(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
