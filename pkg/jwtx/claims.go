package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default lifetimes for the session cookie flow.
//
// The token lives for an hour while the cookie carrying it lives for a day,
// so a browser keeps sending an expired token for 23 hours and gets 401s
// until the user logs in again. Both are kept configurable instead of being
// unified until product decides which one is right.
const (
	// DefaultSessionTTL is the lifetime of the signed session token.
	DefaultSessionTTL = time.Hour

	// DefaultCookieMaxAge is the max-age of the cookie that carries it.
	DefaultCookieMaxAge = 24 * time.Hour
)

// Claims are the session token claims. Subject is the account id.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the authenticated account.
	Email string `json:"email"`

	// Role is the identity space the subject lives in ("user" or "admin").
	// Without it a user token and an admin token are indistinguishable.
	Role string `json:"role"`
}

// NewSessionClaims builds minimally-correct claims for a login.
func NewSessionClaims(
	subject, email, role string,
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
		Email: email,
		Role:  role,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
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

// ValidateSubject rejects tokens that carry no subject or role; the auth
// gate has nothing to resolve the caller to without them.
func (c *Claims) ValidateSubject() error {
	if c.Subject == "" || c.Role == "" {
		return ErrInvalidClaim
	}
	return nil
}
