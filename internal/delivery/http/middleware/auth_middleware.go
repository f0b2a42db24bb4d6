// Package middleware contains the echo middleware used by the HTTP delivery.
package middleware

import (
	"shelf/internal/delivery/http/response"
	"shelf/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie that carries the session token.
const SessionCookieName = "token"

// ContextKeyUserID is the echo context key holding the authenticated user ID.
const ContextKeyUserID = "userID"

// AuthMiddleware guards routes behind a valid session cookie.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the session token carried by the request cookie.
// A missing cookie gets exactly the same rejection as a bad or expired one,
// so probing responses reveal nothing about why authentication failed.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.tokenSvc.ValidateToken(readSessionCookie(c))
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Missing or invalid session")
		}

		c.Set(ContextKeyUserID, claims.UserID)

		return next(c)
	}
}

// readSessionCookie returns the session cookie value, or empty string when
// the cookie is absent. An empty token never validates.
func readSessionCookie(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie == nil {
		return ""
	}

	return cookie.Value
}

// ReadSessionCookie exposes the cookie lookup for the session probe route,
// which reports token state instead of rejecting the request.
func ReadSessionCookie(c echo.Context) string {
	return readSessionCookie(c)
}

// UserID extracts the authenticated user ID set by Authenticate.
func UserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(ContextKeyUserID).(int64)

	return id, ok
}
