package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shelf/config"
	"shelf/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/favorites", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestTokenConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Session = "test-secret"

	return cfg
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc, err := auth.NewJWTService(newTestTokenConfig(t))
	require.NoError(t, err)
	mw := NewAuthMiddleware(tokenSvc)

	token, err := tokenSvc.IssueToken(7)
	require.NoError(t, err)

	c, _ := newAuthTestContext(t, &http.Cookie{Name: SessionCookieName, Value: token})

	nextCalled := false
	handler := mw.Authenticate(func(c echo.Context) error {
		nextCalled = true
		userID, ok := UserID(c)
		assert.True(t, ok)
		assert.Equal(t, int64(7), userID)

		return nil
	})

	require.NoError(t, handler(c))
	assert.True(t, nextCalled)
}

// A missing cookie and a bad token must produce byte-identical rejections,
// so clients learn nothing about why authentication failed.
func TestAuthMiddleware_MissingAndInvalidLookAlike(t *testing.T) {
	tokenSvc, err := auth.NewJWTService(newTestTokenConfig(t))
	require.NoError(t, err)
	mw := NewAuthMiddleware(tokenSvc)

	handler := mw.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler must not run without a valid session")

		return nil
	})

	cMissing, recMissing := newAuthTestContext(t, nil)
	require.NoError(t, handler(cMissing))

	cInvalid, recInvalid := newAuthTestContext(t, &http.Cookie{Name: SessionCookieName, Value: "not-a-token"})
	require.NoError(t, handler(cInvalid))

	assert.Equal(t, http.StatusUnauthorized, recMissing.Code)
	assert.Equal(t, http.StatusUnauthorized, recInvalid.Code)
	assert.Equal(t, recMissing.Body.String(), recInvalid.Body.String())
}

func TestAuthMiddleware_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	tokenSvc, err := auth.NewJWTService(newTestTokenConfig(t))
	require.NoError(t, err)
	mw := NewAuthMiddleware(tokenSvc)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Session = "other-secret"
	otherSvc, err := auth.NewJWTService(otherCfg)
	require.NoError(t, err)

	foreignToken, err := otherSvc.IssueToken(7)
	require.NoError(t, err)

	handler := mw.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler must not run without a valid session")

		return nil
	})

	c, rec := newAuthTestContext(t, &http.Cookie{Name: SessionCookieName, Value: foreignToken})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
