package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

func newTestTokenService(ttl time.Duration) *TokenService {
	return NewTokenService("secret", ttl, zerolog.Nop())
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := newTestTokenService(time.Hour)

	token, err := svc.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	if !svc.Validate(token) {
		t.Fatalf("freshly issued token should be valid")
	}

	sub, ok := svc.Subject(token)
	if !ok {
		t.Fatalf("Subject failed on valid token")
	}
	if sub != "user-42" {
		t.Fatalf("expected subject user-42, got %s", sub)
	}
}

func TestTokenService_ExpiredToken(t *testing.T) {
	svc := newTestTokenService(time.Hour)

	// craft a token signed with the right key but already expired
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   "user-42",
		IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Second)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if svc.Validate(expired) {
		t.Fatalf("expired token should be invalid")
	}
	if _, ok := svc.Subject(expired); ok {
		t.Fatalf("Subject should fail on expired token")
	}
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := newTestTokenService(time.Hour)

	token, err := svc.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// flip one byte in the signature segment
	last := token[len(token)-1]
	flipped := byte('A')
	if last == flipped {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	if svc.Validate(tampered) {
		t.Fatalf("tampered token should be invalid")
	}
}

func TestTokenService_WrongKey(t *testing.T) {
	other := NewTokenService("other-secret", time.Hour, zerolog.Nop())
	token, err := other.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	svc := newTestTokenService(time.Hour)
	if svc.Validate(token) {
		t.Fatalf("token signed with another key should be invalid")
	}
}

func TestTokenService_WrongAlgorithm(t *testing.T) {
	svc := newTestTokenService(time.Hour)

	claims := jwt.RegisteredClaims{
		Subject:   "user-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if svc.Validate(token) {
		t.Fatalf("token with unexpected algorithm should be invalid")
	}
}

func TestTokenService_MalformedToken(t *testing.T) {
	svc := newTestTokenService(time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b", strings.Repeat("x", 100)} {
		if svc.Validate(token) {
			t.Fatalf("malformed token %q should be invalid", token)
		}
		if _, ok := svc.Subject(token); ok {
			t.Fatalf("Subject should fail on malformed token %q", token)
		}
	}
}
