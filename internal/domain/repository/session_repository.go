package repository

import (
	"context"
	"errors"

	"connect/internal/domain/entity"
)

var (
	// ErrSessionNotFound is returned when no session matches the token hash.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when the matching session is past expiry.
	ErrSessionExpired = errors.New("session expired")
)

// SessionRepository persists server-side sessions. Only the SHA-256 hash of
// the client-held token is ever stored.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a session by its token hash. Returns
	// ErrSessionExpired when the record exists but is past its expiry.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash ends a session. Missing hashes are not an error;
	// logout is idempotent.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteExpired removes all sessions past their expiry and returns how
	// many were removed. A background sweeper calls this periodically.
	DeleteExpired(ctx context.Context) (int64, error)
}
