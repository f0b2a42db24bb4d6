// Package usecase defines the application's business logic interfaces.
package usecase

import (
	"context"
	"time"

	"shelf/internal/domain/entity"
)

// LoginInput carries the credentials submitted to start a session.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginOutput carries the issued session token and the authenticated user.
type LoginOutput struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// SessionUsecase defines the interface for session management use cases.
type SessionUsecase interface {
	// Login verifies the submitted credentials and issues a session token.
	// Unknown email and wrong password fail with the same error so callers
	// cannot tell which half of the pair was wrong.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// SessionDuration returns the validity window of issued tokens, used
	// to align the cookie expiry with the token's own expiry claim.
	SessionDuration() time.Duration
}
