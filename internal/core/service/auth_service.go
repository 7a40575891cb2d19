package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/seek/client-registry/internal/core/domain"
	"github.com/seek/client-registry/internal/core/ports"
)

// LoginThrottle abstracts the failed-login counter (Redis).
type LoginThrottle interface {
	Blocked(ctx context.Context, identifier string) (bool, error)
	RecordFailure(ctx context.Context, identifier string) error
	Reset(ctx context.Context, identifier string) error
}

// AuthService implements the login flow: throttle check, credential check,
// token issuance.
type AuthService struct {
	users    ports.UserRepository
	tokens   ports.TokenProvider
	throttle LoginThrottle
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenProvider, throttle LoginThrottle, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, throttle: throttle, log: log}
}

// Login authenticates the identifier/password pair and returns a signed token
// carrying the user's role name as the sole role claim. Unknown user, wrong
// password, and a blank role name all yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, error) {
	if identifier == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	blocked, err := s.throttle.Blocked(ctx, identifier)
	if err != nil {
		// A throttle outage must not take logins down with it.
		s.log.Warn().Err(err).Msg("login throttle check failed, proceeding")
	} else if blocked {
		s.log.Info().Str("identifier", identifier).Msg("login blocked by throttle")
		return "", domain.ErrTooManyLoginAttempts
	}

	user, err := s.users.FindByEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, identifier)
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, identifier)
		return "", domain.ErrInvalidCredentials
	}

	if strings.TrimSpace(user.Role) == "" {
		// Structurally valid credentials, but a role-less user can never be
		// authorized anywhere. Reject at the door.
		s.log.Warn().Str("identifier", identifier).Msg("login rejected: user has no role")
		return "", domain.ErrInvalidCredentials
	}

	if err := s.throttle.Reset(ctx, identifier); err != nil {
		s.log.Warn().Err(err).Msg("login throttle reset failed")
	}

	token, err := s.tokens.Issue(user.Email, []string{user.Role})
	if err != nil {
		return "", err
	}

	s.log.Info().Str("identifier", identifier).Str("role", user.Role).Msg("login succeeded")
	return token, nil
}

func (s *AuthService) recordFailure(ctx context.Context, identifier string) {
	if err := s.throttle.RecordFailure(ctx, identifier); err != nil {
		s.log.Warn().Err(err).Msg("login throttle record failed")
	}
}
