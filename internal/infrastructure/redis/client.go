package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config configures the Redis client shared by the decision cache, the
// row queue, the alert channel and the stream consumers.
type Config struct {
	URL string
	// PoolSize overrides the pool size parsed from URL when positive.
	PoolSize int
	// PingTimeout bounds the connection check. Defaults to 5s.
	PingTimeout time.Duration
}

// NewClient creates a Redis client and verifies the server is reachable.
func NewClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}

	client := redis.NewClient(opts)

	if err := Ping(ctx, client, cfg.PingTimeout); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// Ping checks the server answers within timeout.
func Ping(ctx context.Context, client redis.UniversalClient, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return client.Ping(ctx).Err()
}

// Pinger adapts a client to readiness probes.
type Pinger struct {
	Client redis.UniversalClient
}

// Ping implements the readiness check.
func (p Pinger) Ping(ctx context.Context) error {
	return p.Client.Ping(ctx).Err()
}
