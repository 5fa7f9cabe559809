package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is a direct message between two accounts. A conversation thread is
// the union of both directions, ordered by creation time ascending.
type Message struct {
	ID         uuid.UUID `json:"id"`
	SenderID   uuid.UUID `json:"senderId"`
	ReceiverID uuid.UUID `json:"receiverId"`
	Content    string    `json:"content"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"createdAt"`
}
