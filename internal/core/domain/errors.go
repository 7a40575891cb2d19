package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidCredentials covers every login failure: unknown user, wrong
	// password, or a user whose role name is blank. Collapsing them avoids
	// telling callers which part of the credential pair was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is a repository-level outcome; the auth flow translates
	// it to ErrInvalidCredentials before it reaches a client.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidToken is the single outcome for every token failure:
	// malformed, tampered, or expired. The distinction is deliberately not
	// surfaced.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTooManyLoginAttempts is returned when the failed-login throttle has
	// tripped for an identifier.
	ErrTooManyLoginAttempts = errors.New("too many login attempts")

	// ErrClientNotFound is a business-rule error (422), not a routing 404:
	// the resource exists as a concept, the referenced entity does not.
	ErrClientNotFound = errors.New("client not found")

	// ErrAgeMismatch signals the age / birth-date invariant violation.
	ErrAgeMismatch = errors.New("age does not match birth date")
)

// ValidationError carries per-field schema violations detected at the HTTP
// boundary. It maps to 400 with a fieldErrors object in the error envelope.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
