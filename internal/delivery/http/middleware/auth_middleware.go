// Package middleware contains HTTP middleware for the API server.
package middleware

import (
	"connect/internal/delivery/http/response"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/infra/session"
	"connect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys set by Authenticate for handlers to read.
const (
	ContextKeyUserID = "userID"
	ContextKeyUser   = "user"
)

// AuthMiddleware resolves the session cookie to an account. The raw token in
// the cookie is hashed and looked up server-side; the cookie itself carries
// no account data.
type AuthMiddleware struct {
	accountUC usecase.AccountUsecase
	cookies   *session.CookieManager
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(accountUC usecase.AccountUsecase, cookies *session.CookieManager) *AuthMiddleware {
	return &AuthMiddleware{accountUC: accountUC, cookies: cookies}
}

// Authenticate validates the session cookie and stores the account on the
// request context. An expired session also clears the stale cookie so the
// client stops resending it.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rawToken := m.cookies.Token(c)
		if rawToken == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
		}

		user, err := m.accountUC.Authenticate(c.Request().Context(), rawToken)
		if err != nil {
			if errors.Is(err, domainerrors.ErrSessionExpired) {
				if clearErr := m.cookies.Clear(c); clearErr != nil {
					return errors.WithStack(clearErr)
				}

				return response.Unauthorized(c, "SESSION_EXPIRED", "Session has expired, please log in again")
			}
			if errors.Is(err, domainerrors.ErrUnauthenticated) {
				return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or expired session")
			}

			return errors.WithStack(err)
		}

		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyUser, user)

		return next(c)
	}
}
