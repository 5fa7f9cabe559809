package handler

import (
	"log/slog"
	"net/http"

	"connect/internal/delivery/http/response"
	"connect/internal/domain/entity"
	"connect/internal/infra/session"
	"connect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Cookies   *session.CookieManager
	Logger    *slog.Logger
}

// AuthHandler holds dependencies for account and session handlers.
type AuthHandler struct {
	accountUC usecase.AccountUsecase
	cookies   *session.CookieManager
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		accountUC: params.AccountUC,
		cookies:   params.Cookies,
		logger:    params.Logger,
	}
}

// SignupRequest represents the request body for registering an account.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=consumer business artisan"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
}

// LoginRequest represents the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Signup registers an account and logs it in immediately: the fresh session
// token goes out as a cookie on the 201 response.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.accountUC.Signup(c.Request().Context(), usecase.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
		Bio:      req.Bio,
		Location: req.Location,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.cookies.SetToken(c, output.SessionToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User.Public(), "Account registered successfully")
}

// Login verifies credentials and opens a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.accountUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.cookies.SetToken(c, output.SessionToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.User.Public(), "Login successful")
}

// Logout ends the server-side session and expires the cookie. Safe to call
// without a valid session.
func (h *AuthHandler) Logout(c echo.Context) error {
	rawToken := h.cookies.Token(c)

	if err := h.accountUC.Logout(c.Request().Context(), rawToken); err != nil {
		return errors.WithStack(err)
	}

	if err := h.cookies.Clear(c); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// CurrentUser returns the authenticated account's public fields.
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.accountUC.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user.Public(), "Current user retrieved successfully")
}
