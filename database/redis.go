package database

import (
	"context"
	"fmt"
	"time"

	"kucukaslan/nodeapp/config"

	"github.com/redis/go-redis/v9"
)

// Redis is the optional cache connection reported by /health
type Redis struct {
	*redis.Client
	dialTimeout time.Duration
}

// NewRedis returns nil when Redis is disabled. The client dials lazily.
func NewRedis(cfg *config.RedisConfig) *Redis {
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.GetRedisAddr(),
		Password:    cfg.Password,
		DB:          0, // default DB
		DialTimeout: cfg.DialTimeout,
		MaxRetries:  -1,
	})
	return &Redis{Client: client, dialTimeout: cfg.DialTimeout}
}

// Connect pings Redis in the background; the channel yields one result and closes
func (r *Redis) Connect(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		ctx, cancel := context.WithTimeout(ctx, r.dialTimeout)
		defer cancel()
		done <- r.HealthCheck(ctx)
	}()
	return done
}

// HealthCheck verifies that the Redis connection is alive
func (r *Redis) HealthCheck(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return fmt.Errorf("Redis connection is not initialized")
	}
	if err := r.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping Redis: %w", err)
	}
	return nil
}

// Close closes the Redis client connection
func (r *Redis) Close() error {
	if r == nil || r.Client == nil {
		return nil
	}
	if err := r.Client.Close(); err != nil {
		return fmt.Errorf("failed to close Redis connection: %w", err)
	}
	return nil
}
