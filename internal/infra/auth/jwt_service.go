// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"shelf/config"
	"shelf/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     string           // Symmetric key for signing session tokens.
	sessionTTL time.Duration    // Fixed validity window per issued token.
	now        func() time.Time // Clock source; nil means time.Now.
}

func (s *jwtService) clock() time.Time {
	if s.now != nil {
		return s.now()
	}

	return time.Now()
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtService{
		secret:     cfg.SecretKey.Session,
		sessionTTL: cfg.SessionTTL(),
	}, nil
}

// IssueToken creates a signed session token for the given user.
// The expiry is absolute: issuance time plus the configured TTL.
func (s *jwtService) IssueToken(userID int64) (string, error) {
	now := s.clock()
	claims := &service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// ValidateToken checks the signature, shape and expiry of a session token.
// The library rejects a token whose expiry is not strictly in the future, so
// a token verified at its exact expiry instant is already expired.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(s.clock))
	if err != nil {
		// The caller sees one uniform failure; the cause stays in the chain
		// for logging.
		return nil, errors.Wrap(err, "invalid or expired session token")
	}
	if !token.Valid {
		return nil, errors.New("invalid or expired session token")
	}

	return claims, nil
}

// GetSessionDuration returns the configured session lifetime.
func (s *jwtService) GetSessionDuration() time.Duration {
	return s.sessionTTL
}
