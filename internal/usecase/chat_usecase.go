package usecase

import (
	"context"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
)

// SendMessageInput defines the data required to send a direct message.
type SendMessageInput struct {
	ReceiverID uuid.UUID
	Content    string
}

// ChatUsecase defines the interface for direct messaging.
type ChatUsecase interface {
	// Send persists a message and pushes it to the receiver's live stream.
	// Persistence is authoritative; the live push is best-effort.
	Send(ctx context.Context, senderID uuid.UUID, input SendMessageInput) (*entity.Message, error)

	// Conversation returns the full two-way thread between the caller and
	// the other account, oldest first.
	Conversation(ctx context.Context, userID, otherID uuid.UUID) ([]*entity.Message, error)

	// MarkRead flags a message as read and returns the updated record.
	MarkRead(ctx context.Context, messageID uuid.UUID) (*entity.Message, error)

	// Stream subscribes the caller to messages addressed to it. The channel
	// closes when ctx is canceled.
	Stream(ctx context.Context, userID uuid.UUID) (<-chan *entity.Message, error)
}
