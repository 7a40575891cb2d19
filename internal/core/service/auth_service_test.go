package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/seek/client-registry/internal/core/domain"
	"github.com/seek/client-registry/internal/core/token"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	clone := *user
	r.users[user.Email] = &clone
	return &clone, nil
}

type stubThrottle struct {
	blocked  bool
	failures int
	resets   int
}

func (t *stubThrottle) Blocked(_ context.Context, _ string) (bool, error) {
	return t.blocked, nil
}

func (t *stubThrottle) RecordFailure(_ context.Context, _ string) error {
	t.failures++
	return nil
}

func (t *stubThrottle) Reset(_ context.Context, _ string) error {
	t.resets++
	return nil
}

func userWith(t *testing.T, email, password, role string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return &domain.User{Email: email, PasswordHash: string(hash), Role: role}
}

func newAuthFixture(t *testing.T, users ...*domain.User) (*AuthService, *stubThrottle, *token.Provider) {
	t.Helper()
	repo := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		repo.users[u.Email] = u
	}
	tokens := token.NewProvider("secret", time.Hour)
	throttle := &stubThrottle{}
	return NewAuthService(repo, tokens, throttle, zerolog.Nop()), throttle, tokens
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, throttle, tokens := newAuthFixture(t, userWith(t, "carol@example.com", "s3cret", domain.RoleAdmin))

	signed, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims, err := tokens.Validate(signed)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Subject != "carol@example.com" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != domain.RoleAdmin {
		t.Fatalf("unexpected roles: %v", claims.Roles)
	}
	if throttle.resets != 1 {
		t.Fatalf("expected throttle reset, got %d", throttle.resets)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, throttle, _ := newAuthFixture(t, userWith(t, "dave@example.com", "goodpass", domain.RoleAdmin))

	if _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if throttle.failures != 1 {
		t.Fatalf("expected failure recorded, got %d", throttle.failures)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, throttle, _ := newAuthFixture(t)

	if _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if throttle.failures != 1 {
		t.Fatalf("expected failure recorded, got %d", throttle.failures)
	}
}

func TestAuthService_Login_RolelessUser(t *testing.T) {
	svc, _, _ := newAuthFixture(t, userWith(t, "norole@example.com", "pass", "  "))

	signed, err := svc.Login(context.Background(), "norole@example.com", "pass")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if signed != "" {
		t.Fatalf("role-less user must never receive a token")
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	svc, throttle, _ := newAuthFixture(t, userWith(t, "carol@example.com", "s3cret", domain.RoleAdmin))
	throttle.blocked = true

	if _, err := svc.Login(context.Background(), "carol@example.com", "s3cret"); !errors.Is(err, domain.ErrTooManyLoginAttempts) {
		t.Fatalf("expected ErrTooManyLoginAttempts, got %v", err)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	if _, err := svc.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty identifier, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "a@example.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}
