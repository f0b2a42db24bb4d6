package impl

import (
	"context"
	"testing"
	"time"

	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	mockRepo "shelf/internal/mocks/repository"
	mockSvc "shelf/internal/mocks/service"
	"shelf/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionServiceForTest(t *testing.T) (usecase.SessionUsecase, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenService) {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	service := NewSessionService(SessionServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       newDiscardLogger(),
	})

	return service, userRepo, hasher, tokenSvc
}

func TestSessionService_Login_Success(t *testing.T) {
	service, userRepo, hasher, tokenSvc := newSessionServiceForTest(t)

	ctx := context.Background()
	user := &entity.User{
		ID:             7,
		Email:          "reader@example.com",
		HashedPassword: "$2a$10$stored-hash",
	}

	userRepo.EXPECT().
		FindByEmail(ctx, "reader@example.com").
		Return(user, nil)

	hasher.EXPECT().
		Check("hunter22hunter22", "$2a$10$stored-hash").
		Return(true)

	tokenSvc.EXPECT().
		IssueToken(int64(7)).
		Return("signed.session.token", nil)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "reader@example.com",
		Password: "hunter22hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed.session.token", output.Token)
	assert.Equal(t, user, output.User)
}

func TestSessionService_Login_UnknownEmail(t *testing.T) {
	service, userRepo, _, _ := newSessionServiceForTest(t)

	ctx := context.Background()
	userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "hunter22hunter22",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	service, userRepo, hasher, _ := newSessionServiceForTest(t)

	ctx := context.Background()
	user := &entity.User{
		ID:             7,
		Email:          "reader@example.com",
		HashedPassword: "$2a$10$stored-hash",
	}

	userRepo.EXPECT().
		FindByEmail(ctx, "reader@example.com").
		Return(user, nil)

	hasher.EXPECT().
		Check("wrong-password", "$2a$10$stored-hash").
		Return(false)

	_, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "reader@example.com",
		Password: "wrong-password",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

// Both failure modes must be indistinguishable to the caller: same base
// error, same user-facing message.
func TestSessionService_Login_UniformCredentialError(t *testing.T) {
	service, userRepo, hasher, _ := newSessionServiceForTest(t)

	ctx := context.Background()
	user := &entity.User{
		ID:             7,
		Email:          "reader@example.com",
		HashedPassword: "$2a$10$stored-hash",
	}

	userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)
	userRepo.EXPECT().
		FindByEmail(ctx, "reader@example.com").
		Return(user, nil)
	hasher.EXPECT().
		Check("wrong-password", "$2a$10$stored-hash").
		Return(false)

	_, unknownEmailErr := service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "whatever123"})
	_, wrongPasswordErr := service.Login(ctx, &usecase.LoginInput{Email: "reader@example.com", Password: "wrong-password"})

	require.Error(t, unknownEmailErr)
	require.Error(t, wrongPasswordErr)

	var appErrA domainerrors.AppError
	var appErrB domainerrors.AppError
	require.True(t, errors.As(unknownEmailErr, &appErrA))
	require.True(t, errors.As(wrongPasswordErr, &appErrB))
	assert.Equal(t, appErrA.HTTPCode(), appErrB.HTTPCode())
	assert.Equal(t, appErrA.ErrorCode(), appErrB.ErrorCode())
	assert.Equal(t, "Bad email or password", appErrA.Message())
	assert.Equal(t, "Bad email or password", appErrB.Message())
}

func TestSessionService_Login_TokenIssueFailure(t *testing.T) {
	service, userRepo, hasher, tokenSvc := newSessionServiceForTest(t)

	ctx := context.Background()
	user := &entity.User{
		ID:             7,
		Email:          "reader@example.com",
		HashedPassword: "$2a$10$stored-hash",
	}

	userRepo.EXPECT().
		FindByEmail(ctx, "reader@example.com").
		Return(user, nil)
	hasher.EXPECT().
		Check("hunter22hunter22", "$2a$10$stored-hash").
		Return(true)
	tokenSvc.EXPECT().
		IssueToken(int64(7)).
		Return("", errors.New("signing failed"))

	_, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "reader@example.com",
		Password: "hunter22hunter22",
	})
	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestSessionService_SessionDuration(t *testing.T) {
	service, _, _, tokenSvc := newSessionServiceForTest(t)

	tokenSvc.EXPECT().
		GetSessionDuration().
		Return(3 * time.Hour)

	assert.Equal(t, 3*time.Hour, service.SessionDuration())
}
