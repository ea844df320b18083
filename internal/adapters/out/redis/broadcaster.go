// Package redis implements the real-time push port on Redis Pub/Sub.
// Subscribers (the websocket gateway, browser bridges) listen on the
// channels named in ports and receive one JSON document per event.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"travelorders/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// Config holds the Redis connection settings.
type Config struct {
	Address  string
	Password string
	DB       int
}

// Broadcaster publishes push messages to Redis Pub/Sub channels.
type Broadcaster struct {
	client *redis.Client
}

// NewBroadcaster connects to Redis and verifies the connection.
func NewBroadcaster(ctx context.Context, cfg Config) (*Broadcaster, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Broadcaster{client: client}, nil
}

// NewBroadcasterWithClient wraps an existing client. Used by tests.
func NewBroadcasterWithClient(client *redis.Client) *Broadcaster {
	return &Broadcaster{client: client}
}

// Publish marshals the message and publishes it on the given channel.
// Pub/Sub is fire-and-forget: a channel with no subscribers accepts the
// publish and discards it.
func (b *Broadcaster) Publish(ctx context.Context, channel string, message ports.PushMessage) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal push message: %w", err)
	}

	if err = b.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", channel, err)
	}
	return nil
}

// Close closes the underlying Redis connection.
func (b *Broadcaster) Close() error {
	return b.client.Close()
}
