package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connect/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager() *CookieManager {
	cfg := &config.Config{}
	cfg.Session = config.SessionConfig{
		Secret:     "test-secret",
		CookieName: "connect_session",
		TTL:        time.Hour,
	}

	return NewCookieManager(cfg)
}

func TestCookieManager_RoundTrip(t *testing.T) {
	m := testManager()
	e := echo.New()

	// Write the token on one response.
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, m.SetToken(e.NewContext(req, rec), "raw-token-value"))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "connect_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.NotContains(t, cookies[0].Value, "raw-token-value", "cookie payload is encoded, not plaintext")

	// Read it back on a following request.
	req2 := httptest.NewRequest(http.MethodGet, "/me", nil)
	req2.AddCookie(cookies[0])
	c2 := e.NewContext(req2, httptest.NewRecorder())
	assert.Equal(t, "raw-token-value", m.Token(c2))
}

func TestCookieManager_Token_AbsentCookie(t *testing.T) {
	m := testManager()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Empty(t, m.Token(c))
}

func TestCookieManager_Token_Tampered(t *testing.T) {
	m := testManager()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "connect_session", Value: "forged-payload"})
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Empty(t, m.Token(c))
}

func TestCookieManager_Clear(t *testing.T) {
	m := testManager()
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, m.Clear(e.NewContext(req, rec)))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
