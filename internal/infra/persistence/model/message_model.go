package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageModel mirrors the 'messages' table. The composite indexes back the
// two directions of the conversation query.
type MessageModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SenderID   uuid.UUID `gorm:"type:uuid;index:idx_messages_sender_receiver;not null"`
	ReceiverID uuid.UUID `gorm:"type:uuid;index:idx_messages_sender_receiver;index;not null"`
	Content    string    `gorm:"type:text;not null"`
	Read       bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
