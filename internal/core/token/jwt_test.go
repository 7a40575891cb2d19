package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/seek/client-registry/internal/core/domain"
)

func TestProvider_IssueValidate_Roundtrip(t *testing.T) {
	p := NewProvider("secret", time.Hour)

	signed, err := p.Issue("alice@example.com", []string{"admin"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := p.Validate(signed)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Subject != "alice@example.com" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "admin" {
		t.Fatalf("unexpected roles: %v", claims.Roles)
	}
}

func TestProvider_Validate_Expired(t *testing.T) {
	p := NewProvider("secret", time.Minute)

	issued := time.Now().Add(-2 * time.Minute)
	p.now = func() time.Time { return issued }
	signed, err := p.Issue("alice@example.com", []string{"admin"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	p.now = time.Now
	if _, err := p.Validate(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestProvider_Validate_Tampered(t *testing.T) {
	p := NewProvider("secret", time.Hour)

	signed, err := p.Issue("alice@example.com", []string{"admin"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(signed, ".")
	tampered := parts[0] + "." + parts[1] + "." + "AAAA"
	if _, err := p.Validate(tampered); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestProvider_Validate_WrongSecret(t *testing.T) {
	issuer := NewProvider("secret-a", time.Hour)
	verifier := NewProvider("secret-b", time.Hour)

	signed, err := issuer.Issue("alice@example.com", nil)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Validate(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestProvider_Validate_Garbage(t *testing.T) {
	p := NewProvider("secret", time.Hour)
	if _, err := p.Validate("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
