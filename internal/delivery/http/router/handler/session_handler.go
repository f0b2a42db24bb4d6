// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"shelf/config"
	"shelf/internal/delivery/http/middleware"
	"shelf/internal/delivery/http/response"
	"shelf/internal/domain/service"
	"shelf/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for session-related handlers.
type SessionHandler struct {
	uc       usecase.SessionUsecase
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, tokenSvc service.TokenService, cfg *config.Config) *SessionHandler {
	return &SessionHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		cfg:      cfg,
	}
}

// Login handles the session creation request. On success the issued token is
// set as a cookie whose expiry matches the token's own validity window.
func (h *SessionHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie(output.Token, time.Now().Add(h.uc.SessionDuration())))

	return response.Success(c, http.StatusOK, output.User, "Login successful")
}

// Probe reports whether the request carries a currently valid session token.
// Unlike guarded routes it never rejects; the token state is the payload.
func (h *SessionHandler) Probe(c echo.Context) error {
	_, err := h.tokenSvc.ValidateToken(middleware.ReadSessionCookie(c))

	return response.Success(c, http.StatusOK, map[string]bool{"active": err == nil}, "Session state")
}

// Logout clears the session cookie. The token itself stays valid until its
// expiry; there is no server-side revocation.
func (h *SessionHandler) Logout(c echo.Context) error {
	expired := h.sessionCookie("", time.Unix(0, 0))
	expired.MaxAge = -1
	c.SetCookie(expired)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// sessionCookie builds the session cookie. HttpOnly keeps the token away
// from scripts; Secure is enabled outside local development.
func (h *SessionHandler) sessionCookie(token string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
}
