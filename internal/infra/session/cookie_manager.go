// Package session handles the client half of authentication: the secure
// cookie carrying the raw session token. The token itself is opaque; the
// server-side record lives in the sessions table keyed by the token's hash.
package session

import (
	"net/http"
	"time"

	"connect/config"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const tokenKey = "token"

// CookieManager reads and writes the session cookie using a signed
// gorilla/sessions store. Tampered cookies fail signature verification and
// are treated the same as absent ones.
type CookieManager struct {
	store      *sessions.CookieStore
	cookieName string
}

// NewCookieManager builds the manager from the session config.
func NewCookieManager(cfg *config.Config) *CookieManager {
	store := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		Domain:   cfg.Session.CookieDomain,
		MaxAge:   int(cfg.Session.TTL / time.Second),
		HttpOnly: true,
		Secure:   cfg.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}

	return &CookieManager{
		store:      store,
		cookieName: cfg.Session.CookieName,
	}
}

// SetToken writes the raw token into the session cookie.
func (m *CookieManager) SetToken(c echo.Context, rawToken string) error {
	sess, _ := m.store.Get(c.Request(), m.cookieName)
	sess.Values[tokenKey] = rawToken

	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return errors.Wrap(err, "failed to save session cookie")
	}

	return nil
}

// Token extracts the raw token from the request's cookie. An absent,
// malformed or tampered cookie returns an empty string.
func (m *CookieManager) Token(c echo.Context) string {
	sess, err := m.store.Get(c.Request(), m.cookieName)
	if err != nil || sess.IsNew {
		return ""
	}

	raw, ok := sess.Values[tokenKey].(string)
	if !ok {
		return ""
	}

	return raw
}

// Clear expires the cookie on the client.
func (m *CookieManager) Clear(c echo.Context) error {
	sess, _ := m.store.Get(c.Request(), m.cookieName)
	sess.Options.MaxAge = -1
	sess.Values = map[any]any{}

	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return errors.Wrap(err, "failed to clear session cookie")
	}

	return nil
}
