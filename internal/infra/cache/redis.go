// Package cache holds the catalog read cache. Entries live under a
// generation number; bumping it retires every key at once.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"click-collect/internal/pkg/config"
	"click-collect/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
)

const (
	keyPrefix  = "catalog"
	versionKey = keyPrefix + ":version"
)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient connects and pings, so a wrong address fails at startup.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

var _ shared.CatalogCache = (*RedisCache)(nil)

func (c *RedisCache) Get(ctx context.Context, key string, dest any) (shared.CacheGeneration, bool) {
	gen, err := c.generation(ctx)
	if err != nil {
		return shared.NoGeneration, false
	}
	raw, err := c.client.Get(ctx, versionedKey(gen, key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("catalog cache read failed", "key", key, "error", err.Error())
		}
		return gen, false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		slog.Warn("catalog cache entry is corrupt", "key", key, "error", err.Error())
		return gen, false
	}
	return gen, true
}

// Set writes under gen, the generation Get saw before the value was loaded.
// If Invalidate ran in between, the entry is already unreachable.
func (c *RedisCache) Set(ctx context.Context, gen shared.CacheGeneration, key string, value any) {
	if gen < 0 {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		slog.Warn("catalog cache encode failed", "key", key, "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, versionedKey(gen, key), raw, c.ttl).Err(); err != nil {
		slog.Warn("catalog cache write failed", "key", key, "error", err.Error())
	}
}

func (c *RedisCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		slog.Error("catalog cache invalidation failed", "error", err.Error())
	}
}

func (c *RedisCache) generation(ctx context.Context) (shared.CacheGeneration, error) {
	v, err := c.client.Get(ctx, versionKey).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		slog.Warn("catalog cache version read failed", "error", err.Error())
		return shared.NoGeneration, err
	}
	gen, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return shared.NoGeneration, err
	}
	return shared.CacheGeneration(gen), nil
}

func versionedKey(gen shared.CacheGeneration, key string) string {
	return keyPrefix + ":v" + strconv.FormatInt(int64(gen), 10) + ":" + key
}

// Nop never stores anything. It is used when REDIS_ADDR is empty.
type Nop struct{}

var _ shared.CatalogCache = Nop{}

func (Nop) Get(context.Context, string, any) (shared.CacheGeneration, bool) {
	return shared.NoGeneration, false
}
func (Nop) Set(context.Context, shared.CacheGeneration, string, any) {}
func (Nop) Invalidate(context.Context)                               {}
