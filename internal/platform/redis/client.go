package redis

import (
	"context"
	"fmt"

	"github.com/phrazzld/taskq-api/internal/config"
	goredis "github.com/redis/go-redis/v9"
)

// NewClient opens a Redis client from configuration and verifies it with PING.
// The caller owns the client and must Close it on shutdown.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Addr, err)
	}

	return client, nil
}
