// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Username string
	Email    string
	Password string
	Role     entity.Role
	Bio      string
	Location string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the account and its fresh session token. The raw token
// goes into the cookie; it is never persisted as-is.
type AuthOutput struct {
	User         *entity.User
	SessionToken string
}

// AccountUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer depends on.
type AccountUsecase interface {
	// Signup registers a new account and opens a session for it, so the
	// client is logged in immediately after registering.
	Signup(ctx context.Context, input SignupInput) (*AuthOutput, error)

	// Login verifies credentials and opens a session.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// Logout ends the session behind the raw token. Unknown tokens are
	// ignored; logout is idempotent.
	Logout(ctx context.Context, rawToken string) error

	// Authenticate resolves a raw session token to its account.
	Authenticate(ctx context.Context, rawToken string) (*entity.User, error)

	// CurrentUser fetches the authenticated account's record.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
