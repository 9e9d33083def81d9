// Package events publishes domain events on a Redis pub/sub channel so
// other processes can react to state changes without polling.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/SitterMatch/internal/domain"
)

const DefaultChannel = "sittermatch.events"

type RedisPublisher struct {
	rdb     *redis.Client
	channel string
}

// NewRedisClient creates and verifies a Redis client connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return rdb, nil
}

func NewRedisPublisher(rdb *redis.Client, channel string) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisPublisher{rdb: rdb, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, e domain.Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err = p.rdb.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", e.Type, err)
	}

	return nil
}

// Subscribe decodes events from the channel until ctx is done. Malformed
// messages are skipped.
func (p *RedisPublisher) Subscribe(ctx context.Context) <-chan domain.Event {
	sub := p.rdb.Subscribe(ctx, p.channel)
	out := make(chan domain.Event)

	go func() {
		defer close(out)
		defer sub.Close()

		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var e domain.Event
				if err := json.Unmarshal([]byte(msg.Payload), &e); err != nil {
					continue
				}
				select {
				case out <- e:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

func (p *RedisPublisher) Close() error {
	return p.rdb.Close()
}
