package service

import (
	"context"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
)

// EventBus fans new messages out to the recipient's currently connected
// client sessions. Delivery is best-effort: when nobody is subscribed to the
// channel the event is dropped, the persisted message is picked up on the
// next list call.
type EventBus interface {
	// Publish pushes a message onto the given channel.
	Publish(ctx context.Context, channel string, message *entity.Message) error

	// Subscribe returns a channel of messages published to the given
	// channel. The subscription ends when ctx is canceled.
	Subscribe(ctx context.Context, channel string) (<-chan *entity.Message, error)

	// Close tears down the bus and all subscriptions.
	Close() error
}

// userChannelPrefix namespaces per-account channels on shared transports
// such as redis.
const userChannelPrefix = "user:"

// UserChannel returns the bus channel a client joins for its own account.
func UserChannel(userID uuid.UUID) string {
	return userChannelPrefix + userID.String()
}
