package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menengai/edge/pkg/redis"
)

func TestConfigEnabled(t *testing.T) {
	t.Parallel()

	assert.False(t, redis.Config{}.Enabled())
	assert.True(t, redis.Config{ConnectionURL: "redis://localhost:6379/0"}.Enabled())
}

func TestConnect(t *testing.T) {
	t.Parallel()

	t.Run("empty url", func(t *testing.T) {
		t.Parallel()

		client, err := redis.Connect(context.Background(), redis.Config{})
		require.ErrorIs(t, err, redis.ErrEmptyConnectionURL)
		assert.Nil(t, client)
	})

	t.Run("invalid url", func(t *testing.T) {
		t.Parallel()

		client, err := redis.Connect(context.Background(), redis.Config{ConnectionURL: "http://localhost"})
		require.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
		assert.Nil(t, client)
	})

	t.Run("unreachable server", func(t *testing.T) {
		t.Parallel()

		client, err := redis.Connect(context.Background(), redis.Config{
			ConnectionURL:  "redis://127.0.0.1:1/0",
			RetryAttempts:  2,
			RetryInterval:  10 * time.Millisecond,
			ConnectTimeout: time.Second,
		})
		require.ErrorIs(t, err, redis.ErrRedisNotReady)
		assert.Nil(t, client)
	})
}

func TestStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mr := miniredis.RunT(t)

	client, err := redis.Connect(ctx, redis.Config{ConnectionURL: "redis://" + mr.Addr() + "/0", RetryAttempts: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store := redis.NewStore(client, "edge:")

	_, ok, err := store.Get(ctx, "orgdir:slug:1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "orgdir:slug:1", "acme", time.Minute))
	assert.True(t, mr.Exists("edge:orgdir:slug:1"))
	assert.Equal(t, time.Minute, mr.TTL("edge:orgdir:slug:1"))

	v, ok, err := store.Get(ctx, "orgdir:slug:1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "acme", v)

	mr.FastForward(time.Minute)
	_, ok, err = store.Get(ctx, "orgdir:slug:1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "k", "v", 0))
	require.NoError(t, store.Delete(ctx, "k"))
	assert.False(t, mr.Exists("edge:k"))
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mr := miniredis.RunT(t)

	client, err := redis.Connect(ctx, redis.Config{ConnectionURL: "redis://" + mr.Addr() + "/0", RetryAttempts: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	check := redis.Healthcheck(client)
	require.NoError(t, check(ctx))

	mr.Close()
	assert.ErrorIs(t, check(ctx), redis.ErrHealthcheckFailed)
}
