package redis_test

import (
	"classroom/packages/common/config"
	Error "classroom/packages/common/errors"
	"classroom/packages/infrastructure/cache/redis"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr := miniredis.RunT(t)

	config.Apply(config.Defaults())
	config.Secret.CacheURI = mr.Addr()
	config.Secret.CachePassword = ""
	config.Secret.CacheDB = 0

	return mr
}

func TestCacheOperations(t *testing.T) {
	mr := setup(t)

	cache := redis.New()
	require.NoError(t, cache.Connect())
	assert.True(t, cache.IsConnected())
	assert.Error(t, cache.Connect(), "second connect must fail")
	defer cache.Close()

	t.Run("Set and Get", func(t *testing.T) {
		require.Nil(t, cache.Set("test-key", "test-value"))

		v, hit := cache.Get("test-key")
		assert.True(t, hit)
		assert.Equal(t, "test-value", v)

		assert.True(t, mr.TTL("test-key") > 0)
	})

	t.Run("Get non-existent key", func(t *testing.T) {
		v, hit := cache.Get("non-existent")
		assert.False(t, hit)
		assert.Equal(t, "", v)
	})

	t.Run("Unsupported value type", func(t *testing.T) {
		assert.NotNil(t, cache.Set("struct", struct{}{}))
		assert.False(t, mr.Exists("struct"))
	})

	t.Run("Delete", func(t *testing.T) {
		mr.Set("to-delete", "value")

		require.Nil(t, cache.Delete("to-delete"))
		assert.False(t, mr.Exists("to-delete"))
		assert.Nil(t, cache.Delete())
	})

	t.Run("DeleteOnNoError", func(t *testing.T) {
		mr.Set("kept", "v")
		mr.Set("removed", "v")

		assert.Equal(t, Error.StatusInternalError, cache.DeleteOnNoError(Error.StatusInternalError, "kept"))
		assert.True(t, mr.Exists("kept"))

		assert.Nil(t, cache.DeleteOnNoError(nil, "removed"))
		assert.False(t, mr.Exists("removed"))
	})

	t.Run("Expiration", func(t *testing.T) {
		require.Nil(t, cache.SetWithTTL("expiring-key", "v", time.Second))

		ttl, ok := cache.TTL("expiring-key")
		assert.True(t, ok)
		assert.True(t, ttl > 0)

		mr.FastForward(time.Second * 2)

		_, hit := cache.Get("expiring-key")
		assert.False(t, hit)

		_, ok = cache.TTL("expiring-key")
		assert.False(t, ok)
	})

	t.Run("Increment", func(t *testing.T) {
		n, err := cache.Increment("counter", time.Minute)
		require.Nil(t, err)
		assert.Equal(t, int64(1), n)

		n, err = cache.Increment("counter", time.Minute)
		require.Nil(t, err)
		assert.Equal(t, int64(2), n)

		assert.True(t, mr.TTL("counter") > 0)
	})

	t.Run("FlushAll", func(t *testing.T) {
		mr.Set("a", "1")
		require.Nil(t, cache.FlushAll())
		assert.Empty(t, mr.Keys())
	})
}

func TestCloseWithoutConnection(t *testing.T) {
	assert.NotNil(t, redis.New().Close())
}
