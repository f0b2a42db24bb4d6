// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "shelf/internal/delivery/context"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	"shelf/internal/domain/service"
	"shelf/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the submitted credentials and issues a session token.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Attempting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error as a wrong password, so responses never reveal
			// whether the email is registered.
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
		}

		srv.log(ctx).Error("Failed to look up user for login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.HashedPassword) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	token, err := srv.tokenService.IssueToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("error", err), slog.Int64("user_id", user.ID))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Info("Login succeeded", slog.Int64("user_id", user.ID))

	return &usecase.LoginOutput{
		Token: token,
		User:  user,
	}, nil
}

// SessionDuration returns the validity window of issued tokens.
func (srv *sessionService) SessionDuration() time.Duration {
	return srv.tokenService.GetSessionDuration()
}
