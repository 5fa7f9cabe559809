package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a server-side authenticated session. The client holds
// the raw random token inside a secure cookie; the database stores only a
// SHA-256 hash of it for comparison.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
