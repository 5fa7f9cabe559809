package repository

import (
	"context"
	"errors"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMessageNotFound is returned when a message id does not resolve.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository defines persistence operations for direct messages.
type MessageRepository interface {
	// Create persists a new message with read=false.
	Create(ctx context.Context, message *entity.Message) error

	// ListConversation returns every message exchanged between the two
	// accounts in either direction, ordered by creation time ascending.
	// Symmetric in its arguments.
	ListConversation(ctx context.Context, userA, userB uuid.UUID) ([]*entity.Message, error)

	// MarkRead sets read=true on the message. Returns ErrMessageNotFound
	// when the id does not resolve.
	MarkRead(ctx context.Context, id uuid.UUID) (*entity.Message, error)
}
