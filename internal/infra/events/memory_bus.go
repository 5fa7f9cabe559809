// Package events provides the live-message fan-out bus. A single-instance
// deployment runs the in-process implementation; multi-instance deployments
// switch to redis pub/sub through configuration.
package events

import (
	"context"
	"sync"

	"connect/internal/domain/entity"
	"connect/internal/domain/service"

	"github.com/pkg/errors"
)

// subscriberBuffer bounds each subscriber channel. A slow consumer drops
// events instead of blocking the publisher; dropped events are recovered by
// the next conversation fetch.
const subscriberBuffer = 16

// ErrBusClosed is returned when publishing or subscribing after Close.
var ErrBusClosed = errors.New("event bus closed")

// memoryBus is an in-process EventBus for single-instance deployments.
type memoryBus struct {
	mu          sync.RWMutex
	closed      bool
	subscribers map[string]map[chan *entity.Message]struct{}
}

// NewMemoryBus creates an in-process event bus.
func NewMemoryBus() service.EventBus {
	return &memoryBus{
		subscribers: make(map[string]map[chan *entity.Message]struct{}),
	}
}

// Publish delivers the message to every current subscriber of the channel.
// Nobody listening is not an error.
func (b *memoryBus) Publish(_ context.Context, channel string, message *entity.Message) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}

	for sub := range b.subscribers[channel] {
		select {
		case sub <- message:
		default:
			// Subscriber buffer full, drop the event.
		}
	}

	return nil
}

// Subscribe registers a channel that receives published messages until ctx
// is canceled.
func (b *memoryBus) Subscribe(ctx context.Context, channel string) (<-chan *entity.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrBusClosed
	}

	sub := make(chan *entity.Message, subscriberBuffer)
	if b.subscribers[channel] == nil {
		b.subscribers[channel] = make(map[chan *entity.Message]struct{})
	}
	b.subscribers[channel][sub] = struct{}{}

	go func() {
		<-ctx.Done()
		b.removeSubscriber(channel, sub)
	}()

	return sub, nil
}

func (b *memoryBus) removeSubscriber(channel string, sub chan *entity.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.subscribers[channel]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}

	delete(subs, sub)
	close(sub)

	if len(subs) == 0 {
		delete(b.subscribers, channel)
	}
}

// Close tears down the bus and closes every subscriber channel.
func (b *memoryBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for channel, subs := range b.subscribers {
		for sub := range subs {
			close(sub)
		}
		delete(b.subscribers, channel)
	}

	return nil
}
