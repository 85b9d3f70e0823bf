// Package redis fans verification snapshots out over Redis Pub/Sub. Nothing
// is stored: subscribers that are offline simply miss a cycle and catch up on
// the next one.
package redis

import (
	"context"

	"github.com/gabapcia/txproof/internal/pkg/logger"
	"github.com/gabapcia/txproof/internal/pkg/resilience/retry"

	redis "github.com/redis/go-redis/v9"
)

const defaultChannel = "txproof"

// conn is the subset of *redis.Client used by this package.
type conn interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
	Close() error
}

type client struct {
	conn    conn
	channel string
}

type config struct {
	channel string
	retry   retry.Retry
}

// Option configures the Redis client.
type Option func(*config)

// WithChannel sets the channel prefix. Snapshots go to "<prefix>:transactions"
// and "<prefix>:entropy". Default: "txproof".
func WithChannel(channel string) Option {
	return func(c *config) {
		if channel != "" {
			c.channel = channel
		}
	}
}

// WithRetry sets the policy used for the initial connectivity check.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// NewClient connects to Redis and pings it, retrying with backoff, before
// returning.
func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	cfg := config{
		channel: defaultChannel,
		retry:   retry.New(retry.WithName("redis.ping")),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := cfg.retry.Execute(ctx, func() error { return rdb.Ping(ctx).Err() }); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	logger.Info(ctx, "connected to redis", "redis.addr", addr, "redis.channel", cfg.channel)

	return &client{
		conn:    rdb,
		channel: cfg.channel,
	}, nil
}

func (c *client) Close() error {
	return c.conn.Close()
}
