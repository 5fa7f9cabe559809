package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connect/config"
	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/infra/session"
	mockUC "connect/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCookies() *session.CookieManager {
	cfg := &config.Config{}
	cfg.Session = config.SessionConfig{
		Secret:     "test-secret",
		CookieName: "connect_session",
		TTL:        time.Hour,
	}

	return session.NewCookieManager(cfg)
}

// sessionCookie produces a valid signed cookie carrying the raw token.
func sessionCookie(t *testing.T, cookies *session.CookieManager, rawToken string) *http.Cookie {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	require.NoError(t, cookies.SetToken(c, rawToken))

	result := rec.Result().Cookies()
	require.NotEmpty(t, result)

	return result[0]
}

func nextHandlerRecordingUser(t *testing.T, wantUserID uuid.UUID) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)
		assert.True(t, ok)
		assert.Equal(t, wantUserID, userID)

		return c.NoContent(http.StatusOK)
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	cookies := testCookies()
	accountUC := mockUC.NewMockAccountUsecase(t)
	m := NewAuthMiddleware(accountUC, cookies)

	user := &entity.User{ID: uuid.New(), Username: "ada"}
	accountUC.On("Authenticate", mock.Anything, "raw-token").Return(user, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/current-user", nil)
	req.AddCookie(sessionCookie(t, cookies, "raw-token"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, m.Authenticate(nextHandlerRecordingUser(t, user.ID))(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Authenticate_NoCookie(t *testing.T) {
	cookies := testCookies()
	accountUC := mockUC.NewMockAccountUsecase(t)
	m := NewAuthMiddleware(accountUC, cookies)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/current-user", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		t.Fatal("next handler must not run without a session")

		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_ExpiredSessionClearsCookie(t *testing.T) {
	cookies := testCookies()
	accountUC := mockUC.NewMockAccountUsecase(t)
	m := NewAuthMiddleware(accountUC, cookies)

	accountUC.On("Authenticate", mock.Anything, "stale-token").Return(nil, domainerrors.ErrSessionExpired)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/current-user", nil)
	req.AddCookie(sessionCookie(t, cookies, "stale-token"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		t.Fatal("next handler must not run with an expired session")

		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	result := rec.Result().Cookies()
	require.NotEmpty(t, result)
	assert.Equal(t, -1, result[0].MaxAge)
}
