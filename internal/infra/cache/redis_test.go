//go:build e2e

package cache_test

import (
	"context"
	"testing"
	"time"

	"click-collect/internal/infra/cache"
	"click-collect/internal/pkg/config"
	"click-collect/internal/usecase/shared"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type stockView struct {
	Stock int `json:"stock"`
}

func newRedisCache(t *testing.T) *cache.RedisCache {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort(nat.Port("6379/tcp")).WithStartupTimeout(60 * time.Second),
			Labels:       map[string]string{"purpose": "click-collect-e2e"},
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start redis container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client, err := cache.NewRedisClient(ctx, config.RedisConfig{Addr: endpoint, PoolSize: 4})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, time.Minute)
}

func TestRedisCache(t *testing.T) {
	c := newRedisCache(t)
	ctx := context.Background()

	t.Run("round trip within a generation", func(t *testing.T) {
		var got stockView
		gen, hit := c.Get(ctx, "product:a", &got)
		require.False(t, hit)

		c.Set(ctx, gen, "product:a", stockView{Stock: 10})

		_, hit = c.Get(ctx, "product:a", &got)
		require.True(t, hit)
		assert.Equal(t, 10, got.Stock)
	})

	t.Run("a load that straddles invalidation is never served", func(t *testing.T) {
		var got stockView
		gen, hit := c.Get(ctx, "product:b", &got)
		require.False(t, hit)

		// stock changes and the cache is invalidated while the stale value is in flight
		c.Invalidate(ctx)
		c.Set(ctx, gen, "product:b", stockView{Stock: 10})

		fresh, hit := c.Get(ctx, "product:b", &got)
		assert.False(t, hit)
		assert.Greater(t, fresh, gen)
	})

	t.Run("invalidate retires earlier entries", func(t *testing.T) {
		var got stockView
		gen, _ := c.Get(ctx, "product:c", &got)
		c.Set(ctx, gen, "product:c", stockView{Stock: 4})

		c.Invalidate(ctx)

		_, hit := c.Get(ctx, "product:c", &got)
		assert.False(t, hit)
	})

	t.Run("no generation skips the write", func(t *testing.T) {
		var got stockView
		c.Set(ctx, shared.NoGeneration, "product:d", stockView{Stock: 1})
		_, hit := c.Get(ctx, "product:d", &got)
		assert.False(t, hit)
	})
}
