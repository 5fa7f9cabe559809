package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"connect/config"
	"connect/internal/domain/entity"
	"connect/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisBus is an EventBus backed by redis pub/sub so that a message sent on
// one instance reaches a recipient streaming from another.
type redisBus struct {
	client *redis.Client
	logger *slog.Logger

	mu            sync.RWMutex
	closed        bool
	subscriptions map[string]*redis.PubSub
	subscribers   map[string]map[chan *entity.Message]struct{}

	ctx    context.Context
	cancel context.CancelFunc
}

// NewRedisBus connects to redis and returns a pub/sub backed event bus.
func NewRedisBus(cfg *config.RedisConfig, logger *slog.Logger) (service.EventBus, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to ping redis")
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &redisBus{
		client:        client,
		logger:        logger,
		subscriptions: make(map[string]*redis.PubSub),
		subscribers:   make(map[string]map[chan *entity.Message]struct{}),
		ctx:           ctx,
		cancel:        cancel,
	}, nil
}

// Publish pushes the message onto the redis channel.
func (b *redisBus) Publish(ctx context.Context, channel string, message *entity.Message) error {
	data, err := json.Marshal(message)
	if err != nil {
		return errors.Wrap(err, "failed to marshal message event")
	}

	if err := b.client.Publish(ctx, channel, data).Err(); err != nil {
		return errors.Wrap(err, "failed to publish message event")
	}

	return nil
}

// Subscribe joins the redis channel. The first subscriber of a channel opens
// the underlying redis subscription; the last one leaving closes it.
func (b *redisBus) Subscribe(ctx context.Context, channel string) (<-chan *entity.Message, error) {
	b.mu.Lock()

	if b.closed {
		b.mu.Unlock()

		return nil, ErrBusClosed
	}

	if _, exists := b.subscriptions[channel]; !exists {
		pubsub := b.client.Subscribe(b.ctx, channel)
		b.subscriptions[channel] = pubsub
		go b.receive(channel, pubsub)
	}

	if b.subscribers[channel] == nil {
		b.subscribers[channel] = make(map[chan *entity.Message]struct{})
	}

	sub := make(chan *entity.Message, subscriberBuffer)
	b.subscribers[channel][sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.removeSubscriber(channel, sub)
	}()

	return sub, nil
}

// receive pumps redis payloads to the channel's local subscribers.
func (b *redisBus) receive(channel string, pubsub *redis.PubSub) {
	ch := pubsub.Channel()
	for {
		select {
		case <-b.ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}

			var message entity.Message
			if err := json.Unmarshal([]byte(msg.Payload), &message); err != nil {
				b.logger.LogAttrs(b.ctx, slog.LevelWarn, "Dropping malformed bus payload",
					slog.String("channel", channel),
					slog.String("error", err.Error()),
				)

				continue
			}

			b.mu.RLock()
			for sub := range b.subscribers[channel] {
				select {
				case sub <- &message:
				default:
					// Subscriber buffer full, drop the event.
				}
			}
			b.mu.RUnlock()
		}
	}
}

func (b *redisBus) removeSubscriber(channel string, sub chan *entity.Message) {
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
		if pubsub, ok := b.subscriptions[channel]; ok {
			_ = pubsub.Close()
			delete(b.subscriptions, channel)
		}
	}
}

// Close tears down every subscription and the redis connection.
func (b *redisBus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()

		return nil
	}
	b.closed = true
	b.cancel()

	for channel, subs := range b.subscribers {
		for sub := range subs {
			close(sub)
		}
		delete(b.subscribers, channel)
	}
	for channel, pubsub := range b.subscriptions {
		_ = pubsub.Close()
		delete(b.subscriptions, channel)
	}
	b.mu.Unlock()

	return errors.Wrap(b.client.Close(), "failed to close redis client")
}
