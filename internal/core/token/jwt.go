// Package token implements the HS256 JWT token service. The signing secret
// is process-wide configuration loaded once at startup.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/seek/client-registry/internal/core/domain"
	"github.com/seek/client-registry/internal/core/ports"
)

const defaultTTL = time.Hour

// Provider issues and validates HS256-signed tokens.
type Provider struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewProvider(secret string, ttl time.Duration) *Provider {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Provider{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue produces a signed token with iat = now and exp = now + ttl.
func (p *Provider) Issue(subject string, roles []string) (string, error) {
	now := p.now().UTC()
	claims := jwt.MapClaims{
		"sub":   subject,
		"roles": roles,
		"iat":   now.Unix(),
		"exp":   now.Add(p.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(p.secret)
}

// Validate verifies signature and expiry and returns the decoded claims.
// Every failure mode collapses into domain.ErrInvalidToken so callers cannot
// distinguish "expired" from "malformed" from "tampered".
func (p *Provider) Validate(tokenString string) (*ports.Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return p.secret, nil
	}, jwt.WithTimeFunc(p.now))
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return nil, domain.ErrInvalidToken
	}

	return &ports.Claims{Subject: subject, Roles: rolesClaim(claims)}, nil
}

// rolesClaim extracts the roles claim, which decodes as []interface{} after
// JSON round-tripping.
func rolesClaim(claims jwt.MapClaims) []string {
	raw, ok := claims["roles"].([]interface{})
	if !ok {
		return nil
	}
	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok {
			roles = append(roles, s)
		}
	}
	return roles
}
