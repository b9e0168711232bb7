//go:build integration
// +build integration

package utils

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminate redis: %v", err)
		}
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { _ = rdb.Close() })
	require.NoError(t, rdb.Ping(ctx).Err())
	return rdb
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	cache := NewRedisCache(startRedis(t), time.Minute)

	var got map[string]int
	found, err := cache.Get(ctx, "scenarios:user:1:page=1:size=20", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, "scenarios:user:1:page=1:size=20", map[string]int{"total": 2}))
	require.NoError(t, cache.Set(ctx, "scenarios:user:1:page=2:size=20", map[string]int{"total": 2}))
	require.NoError(t, cache.Set(ctx, "scenarios:user:2:page=1:size=20", map[string]int{"total": 7}))

	found, err = cache.Get(ctx, "scenarios:user:1:page=1:size=20", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 2, got["total"])

	require.NoError(t, cache.DeletePrefix(ctx, "scenarios:user:1:"))

	found, err = cache.Get(ctx, "scenarios:user:1:page=2:size=20", &got)
	require.NoError(t, err)
	assert.False(t, found)
	found, err = cache.Get(ctx, "scenarios:user:2:page=1:size=20", &got)
	require.NoError(t, err)
	assert.True(t, found)
}
