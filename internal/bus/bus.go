// Package bus fans feature flag cache invalidations out to other replicas
// over a Redis pub/sub channel. Each replica publishes the organization ID
// after writing a flag and drops its own cached snapshot locally; the
// subscriber on every other replica does the same on receipt.
package bus

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Publisher announces that an organization's feature flags changed.
type Publisher interface {
	PublishInvalidate(ctx context.Context, organizationID int64) error
	Close() error
}

type redisPublisher struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger
}

func NewRedisPublisher(client *redis.Client, channel string, logger *slog.Logger) Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisPublisher{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

func (p *redisPublisher) PublishInvalidate(ctx context.Context, organizationID int64) error {
	payload := strconv.FormatInt(organizationID, 10)
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish flag invalidation: %w", err)
	}

	p.logger.DebugContext(ctx, "published flag invalidation", "organization_id", organizationID, "channel", p.channel)
	return nil
}

func (p *redisPublisher) Close() error {
	return nil
}

// NoopPublisher is used when the bus is disabled. Single-replica deployments
// only need the local cache invalidation that happens alongside the publish.
type NoopPublisher struct{}

func (NoopPublisher) PublishInvalidate(context.Context, int64) error { return nil }
func (NoopPublisher) Close() error                                   { return nil }

// Invalidator is the cache-side half of the bus.
type Invalidator interface {
	Invalidate(organizationID int64)
}

// Subscriber listens for invalidation messages and applies them to the local
// flag cache.
type Subscriber struct {
	client  *redis.Client
	channel string
	cache   Invalidator
	logger  *slog.Logger

	sub *redis.PubSub
}

func NewSubscriber(client *redis.Client, channel string, cache Invalidator, logger *slog.Logger) *Subscriber {
	if logger == nil {
		logger = slog.Default()
	}
	return &Subscriber{
		client:  client,
		channel: channel,
		cache:   cache,
		logger:  logger,
	}
}

// Start subscribes and processes messages until ctx is cancelled or Close is
// called. Malformed payloads are logged and skipped; they never stop the loop.
func (s *Subscriber) Start(ctx context.Context) {
	s.sub = s.client.Subscribe(ctx, s.channel)

	go func() {
		ch := s.sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				orgID, err := strconv.ParseInt(msg.Payload, 10, 64)
				if err != nil {
					s.logger.ErrorContext(ctx, "malformed flag invalidation message", "error", err, "payload", msg.Payload, "channel", s.channel)
					continue
				}
				s.cache.Invalidate(orgID)
				s.logger.DebugContext(ctx, "applied flag invalidation", "organization_id", orgID)
			}
		}
	}()
}

func (s *Subscriber) Close() error {
	if s.sub == nil {
		return nil
	}
	return s.sub.Close()
}
