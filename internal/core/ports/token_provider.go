package ports

// Claims is the decoded payload of a validated token.
type Claims struct {
	Subject string
	Roles   []string
}

// TokenProvider issues and validates signed, time-bound tokens.
//
// Validate collapses every failure mode (malformed, bad signature, expired)
// into the single domain.ErrInvalidToken outcome.
type TokenProvider interface {
	Issue(subject string, roles []string) (string, error)
	Validate(token string) (*Claims, error)
}
