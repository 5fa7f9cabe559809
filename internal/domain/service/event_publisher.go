package service

import (
	"context"
)

// MessageEvent is the integration event emitted after a message write. It is
// consumed by systems outside this service (analytics, moderation); the live
// client push goes through the EventBus instead.
type MessageEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	MessageID  string `json:"message_id"`
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id"`
	SentAt     string `json:"sent_at"` // RFC 3339
}

// EventPublisher defines the interface for publishing integration events to
// a message queue. A no-op implementation is used when publishing is not
// configured.
type EventPublisher interface {
	// PublishMessageEvent publishes a message-created event for async processing.
	PublishMessageEvent(ctx context.Context, event *MessageEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
