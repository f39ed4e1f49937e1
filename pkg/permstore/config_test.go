package permstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ommnia/permtree/pkg/permstore"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := permstore.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "redis://localhost:6379/0", cfg.ConnectionURL)
	assert.Equal(t, "permtree", cfg.KeyPrefix)
	assert.Equal(t, time.Duration(0), cfg.TTL)
	assert.Equal(t, 3, cfg.RetryAttempts)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PERMSTORE_REDIS_URL", "redis://:secret@redis.internal:6380/2")
	t.Setenv("PERMSTORE_KEY_PREFIX", "acl")
	t.Setenv("PERMSTORE_TTL", "12h")

	cfg, err := permstore.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "redis://:secret@redis.internal:6380/2", cfg.ConnectionURL)
	assert.Equal(t, "acl", cfg.KeyPrefix)
	assert.Equal(t, 12*time.Hour, cfg.TTL)
}

func TestConnect(t *testing.T) {
	t.Parallel()

	t.Run("invalid connection url", func(t *testing.T) {
		t.Parallel()
		_, err := permstore.Connect(context.Background(), permstore.Config{
			ConnectionURL:  "not-a-url",
			RetryAttempts:  1,
			RetryInterval:  time.Millisecond,
			ConnectTimeout: time.Second,
		})
		assert.ErrorIs(t, err, permstore.ErrFailedToParseConnString)
	})

	t.Run("unreachable server", func(t *testing.T) {
		t.Parallel()
		_, err := permstore.Connect(context.Background(), permstore.Config{
			ConnectionURL:  "redis://127.0.0.1:1/0",
			RetryAttempts:  2,
			RetryInterval:  time.Millisecond,
			ConnectTimeout: time.Second,
		})
		assert.ErrorIs(t, err, permstore.ErrRedisNotReady)
	})

	t.Run("reachable server", func(t *testing.T) {
		t.Parallel()
		mr := miniredis.RunT(t)

		client, err := permstore.Connect(context.Background(), permstore.Config{
			ConnectionURL:  "redis://" + mr.Addr(),
			RetryAttempts:  3,
			RetryInterval:  time.Millisecond,
			ConnectTimeout: time.Second,
		})
		require.NoError(t, err)
		t.Cleanup(func() { _ = client.Close() })

		assert.NoError(t, client.Ping(context.Background()).Err())
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()
	mr := miniredis.RunT(t)

	store, err := permstore.NewFromConfig(context.Background(), permstore.Config{
		ConnectionURL:  "redis://" + mr.Addr(),
		KeyPrefix:      "cfgprefix",
		RetryAttempts:  1,
		RetryInterval:  time.Millisecond,
		ConnectTimeout: time.Second,
	})
	require.NoError(t, err)

	require.NoError(t, store.Grant(context.Background(), "svc", "metrics.read"))
	granted, err := store.Check(context.Background(), "svc", "metrics.read")
	require.NoError(t, err)
	assert.True(t, granted)
}
