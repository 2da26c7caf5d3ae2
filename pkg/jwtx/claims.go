package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the default lifetime for minted access tokens.
// The service itself never mints tokens; this is used by the tokengen CLI
// and by tests.
const DefaultAccessTokenTTL = 2 * time.Hour

// SubjectUnknown is the sentinel subject used when a token carries no "sub"
// claim. Downstream audit fields (created_by, released_by) must never be
// empty.
const SubjectUnknown = "unknown"

// Claims are the access-token claims understood by the hold service. Keep
// changes additive so previously minted tokens stay valid.
type Claims struct {
	jwt.RegisteredClaims

	// Roles are capability strings, e.g. "ops.block:create".
	Roles []string `json:"roles,omitempty"`
}

// NewAccessClaims builds minimally-correct claims for a subject + role list.
func NewAccessClaims(
	subject string,
	roles []string,
	ttl time.Duration,
	issuer string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Roles: roles,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// PrincipalSubject returns the token subject, or SubjectUnknown when the
// claim is absent.
func (c *Claims) PrincipalSubject() string {
	if c.Subject == "" {
		return SubjectUnknown
	}
	return c.Subject
}

// ValidateIssuer checks the issuer matches the expected value. An empty
// expectation enforces nothing.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it becomes valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}
