// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"klinik/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (booking guard).
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for identity caching.
	AuthCacheClient *redis.Client
)

// NewRedisClient connects to the given logical database and pings it.
func NewRedisClient(ctx context.Context, cfg config.Config, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis db %d: %w", db, err)
	}
	return client, nil
}

// InitRedis connects the cache and identity cache clients.
func InitRedis(ctx context.Context, cfg config.Config) error {
	var err error
	if CacheClient, err = NewRedisClient(ctx, cfg, cfg.RedisCacheDB); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	if AuthCacheClient, err = NewRedisClient(ctx, cfg, cfg.RedisAuthDB); err != nil {
		return fmt.Errorf("auth cache: %w", err)
	}
	return nil
}

// CloseRedis closes whichever clients were opened.
func CloseRedis() {
	for _, c := range []*redis.Client{CacheClient, AuthCacheClient} {
		if c != nil {
			_ = c.Close()
		}
	}
}
