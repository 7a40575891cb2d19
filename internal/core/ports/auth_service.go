package ports

import "context"

// AuthService orchestrates the login flow: credential check, throttle, and
// token issuance.
type AuthService interface {
	Login(ctx context.Context, identifier, password string) (string, error)
}
