package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// Tokens are self-contained: once issued they stay valid until expiry and
// cannot be revoked server-side.
type TokenService interface {
	// IssueToken creates a signed session token binding the user ID to a
	// fixed validity window (issuance time + session TTL).
	IssueToken(userID int64) (string, error)

	// ValidateToken checks the signature, shape and expiry of a token.
	// All failure modes surface as the same uniform error to the caller.
	// A token is valid strictly before its expiry instant.
	ValidateToken(tokenString string) (*Claims, error)

	// GetSessionDuration returns the configured session lifetime, used to
	// set the cookie expiry alongside the token's own claim.
	GetSessionDuration() time.Duration
}
