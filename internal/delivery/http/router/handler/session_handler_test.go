package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shelf/config"
	"shelf/internal/delivery/http/middleware"
	"shelf/internal/delivery/http/validator"
	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/infra/auth"
	"shelf/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSessionUsecase lets each test script the login outcome.
type stubSessionUsecase struct {
	loginFn  func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error)
	duration time.Duration
}

func (s *stubSessionUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginFn(ctx, input)
}

func (s *stubSessionUsecase) SessionDuration() time.Duration {
	return s.duration
}

func newSessionTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Session = "test-secret"

	return cfg
}

func newSessionEchoContext(t *testing.T, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, "/session", reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	res := rec.Result()
	defer res.Body.Close()
	for _, cookie := range res.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestSessionHandler_Login_SetsCookie(t *testing.T) {
	cfg := newSessionTestConfig(t)
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	uc := &stubSessionUsecase{
		duration: 3 * time.Hour,
		loginFn: func(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
			assert.Equal(t, "reader@example.com", input.Email)

			return &usecase.LoginOutput{
				Token: "signed.session.token",
				User:  &entity.User{ID: 7, Email: input.Email},
			}, nil
		},
	}
	h := NewSessionHandler(uc, tokenSvc, cfg)

	c, rec := newSessionEchoContext(t, http.MethodPost, `{"email":"reader@example.com","password":"hunter22hunter22"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(t, rec, middleware.SessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed.session.token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure) // non-production config
	assert.WithinDuration(t, time.Now().Add(3*time.Hour), cookie.Expires, time.Minute)
}

func TestSessionHandler_Login_SecureCookieInProduction(t *testing.T) {
	cfg := newSessionTestConfig(t)
	cfg.Env.Env = "production"
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	uc := &stubSessionUsecase{
		duration: 3 * time.Hour,
		loginFn: func(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
			return &usecase.LoginOutput{Token: "tok", User: &entity.User{ID: 7}}, nil
		},
	}
	h := NewSessionHandler(uc, tokenSvc, cfg)

	c, rec := newSessionEchoContext(t, http.MethodPost, `{"email":"reader@example.com","password":"hunter22hunter22"}`)
	require.NoError(t, h.Login(c))

	cookie := findCookie(t, rec, middleware.SessionCookieName)
	require.NotNil(t, cookie)
	assert.True(t, cookie.Secure)
}

func TestSessionHandler_Login_BadCredentials(t *testing.T) {
	cfg := newSessionTestConfig(t)
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	uc := &stubSessionUsecase{
		duration: 3 * time.Hour,
		loginFn: func(_ context.Context, _ *usecase.LoginInput) (*usecase.LoginOutput, error) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
		},
	}
	h := NewSessionHandler(uc, tokenSvc, cfg)

	c, rec := newSessionEchoContext(t, http.MethodPost, `{"email":"nobody@example.com","password":"hunter22hunter22"}`)
	loginErr := h.Login(c)
	require.Error(t, loginErr)
	assert.True(t, errors.Is(loginErr, domainerrors.ErrInvalidCredentials))

	// No session cookie on failure.
	assert.Nil(t, findCookie(t, rec, middleware.SessionCookieName))
}

func TestSessionHandler_Login_PasswordTooShort(t *testing.T) {
	cfg := newSessionTestConfig(t)
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	uc := &stubSessionUsecase{
		duration: 3 * time.Hour,
		loginFn: func(_ context.Context, _ *usecase.LoginInput) (*usecase.LoginOutput, error) {
			t.Fatal("usecase must not run on invalid input")

			return nil, nil
		},
	}
	h := NewSessionHandler(uc, tokenSvc, cfg)

	c, _ := newSessionEchoContext(t, http.MethodPost, `{"email":"reader@example.com","password":"short"}`)
	loginErr := h.Login(c)
	require.Error(t, loginErr)
	assert.True(t, errors.Is(loginErr, domainerrors.ErrValidationFailed))
}

func TestSessionHandler_Probe(t *testing.T) {
	cfg := newSessionTestConfig(t)
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	h := NewSessionHandler(&stubSessionUsecase{duration: 3 * time.Hour}, tokenSvc, cfg)

	validToken, err := tokenSvc.IssueToken(7)
	require.NoError(t, err)

	cases := []struct {
		name   string
		cookie *http.Cookie
		want   bool
	}{
		{name: "no cookie", cookie: nil, want: false},
		{name: "garbage token", cookie: &http.Cookie{Name: middleware.SessionCookieName, Value: "nope"}, want: false},
		{name: "valid token", cookie: &http.Cookie{Name: middleware.SessionCookieName, Value: validToken}, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newSessionEchoContext(t, http.MethodGet, "")
			if tc.cookie != nil {
				c.Request().AddCookie(tc.cookie)
			}

			require.NoError(t, h.Probe(c))
			assert.Equal(t, http.StatusOK, rec.Code)

			var body struct {
				Data struct {
					Active bool `json:"active"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.want, body.Data.Active)
		})
	}
}

func TestSessionHandler_Logout_ClearsCookie(t *testing.T) {
	cfg := newSessionTestConfig(t)
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	h := NewSessionHandler(&stubSessionUsecase{duration: 3 * time.Hour}, tokenSvc, cfg)

	c, rec := newSessionEchoContext(t, http.MethodDelete, "")
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(t, rec, middleware.SessionCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}
