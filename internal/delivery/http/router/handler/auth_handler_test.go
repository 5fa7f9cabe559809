package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connect/config"
	"connect/internal/delivery/http/middleware"
	"connect/internal/delivery/http/validator"
	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/infra/session"
	mockUC "connect/internal/mocks/usecase"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCookies() *session.CookieManager {
	cfg := &config.Config{}
	cfg.Session = config.SessionConfig{
		Secret:     "test-secret",
		CookieName: "connect_session",
		TTL:        time.Hour,
	}

	return session.NewCookieManager(cfg)
}

// newTestEcho builds an Echo instance with the same validator and error
// handler the real server uses.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(testLogger()).HandleHTTPError

	return e
}

func newAuthHandler(t *testing.T) (*AuthHandler, *mockUC.MockAccountUsecase) {
	t.Helper()

	accountUC := mockUC.NewMockAccountUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{
		AccountUC: accountUC,
		Cookies:   testCookies(),
		Logger:    testLogger(),
	})

	return h, accountUC
}

func TestAuthHandler_Signup(t *testing.T) {
	h, accountUC := newAuthHandler(t)
	e := newTestEcho()
	e.POST("/api/auth/signup", h.Signup)

	user := &entity.User{ID: uuid.New(), Username: "ada", Email: "ada@example.com", Role: entity.RoleArtisan}
	accountUC.On("Signup", mock.Anything, mock.MatchedBy(func(input usecase.SignupInput) bool {
		return input.Email == "ada@example.com" && input.Role == entity.RoleArtisan
	})).Return(&usecase.AuthOutput{User: user, SessionToken: "raw-token"}, nil)

	body := `{"username":"ada","email":"ada@example.com","password":"Str0ng!pass","role":"artisan"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "ada")
	assert.NotContains(t, rec.Body.String(), "raw-token", "the session token travels only in the cookie")

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "connect_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuthHandler_Signup_ValidationError(t *testing.T) {
	h, _ := newAuthHandler(t)
	e := newTestEcho()
	e.POST("/api/auth/signup", h.Signup)

	body := `{"username":"ada","password":"Str0ng!pass","role":"artisan"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, accountUC := newAuthHandler(t)
	e := newTestEcho()
	e.POST("/api/auth/login", h.Login)

	accountUC.On("Login", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	body := `{"email":"ada@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_Logout_WithoutSession(t *testing.T) {
	h, accountUC := newAuthHandler(t)
	e := newTestEcho()
	e.POST("/api/auth/logout", h.Logout)

	accountUC.On("Logout", mock.Anything, "").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_CurrentUser(t *testing.T) {
	h, accountUC := newAuthHandler(t)
	e := newTestEcho()

	user := &entity.User{ID: uuid.New(), Username: "ada", Email: "ada@example.com", Role: entity.RoleConsumer}
	accountUC.On("CurrentUser", mock.Anything, user.ID).Return(user, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/current-user", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, user.ID)

	require.NoError(t, h.CurrentUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), user.ID.String())
	assert.NotContains(t, rec.Body.String(), "PasswordHash")
}
