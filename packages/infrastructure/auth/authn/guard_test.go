package authn

import (
	"classroom/packages/common/config"
	"classroom/packages/infrastructure/cache"
	"classroom/packages/infrastructure/cache/redis"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestLoginGuardMemory(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	guard := newLoginGuard(newMemoryStore(clock.Now), 3, 15*time.Minute)

	const login = "ana@example.com"

	require.Nil(t, guard.Check(login))

	assert.Equal(t, InvalidAuthCredentials, guard.Fail(login))
	assert.Equal(t, InvalidAuthCredentials, guard.Fail(login))

	err := guard.Fail(login)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusLocked, err.Status())
	assert.Contains(t, err.Error(), "15 minuto(s)")

	err = guard.Check(login)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusLocked, err.Status())

	clock.Advance(14*time.Minute + 30*time.Second)
	err = guard.Check(login)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "1 minuto(s)")

	clock.Advance(time.Minute)
	assert.Nil(t, guard.Check(login))

	t.Run("success resets attempts", func(t *testing.T) {
		const other = "bia@example.com"

		guard.Fail(other)
		guard.Fail(other)
		guard.Succeed(other)

		assert.Equal(t, InvalidAuthCredentials, guard.Fail(other))
		assert.Nil(t, guard.Check(other))
	})

	t.Run("attempts window expires", func(t *testing.T) {
		const other = "carla@example.com"

		guard.Fail(other)
		guard.Fail(other)
		clock.Advance(16 * time.Minute)

		assert.Equal(t, InvalidAuthCredentials, guard.Fail(other))
		assert.Nil(t, guard.Check(other))
	})
}

func TestMemoryStorePrune(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	store := newMemoryStore(clock.Now)
	guard := newLoginGuard(store, 2, 10*time.Minute)

	guard.Fail("a@example.com")

	clock.Advance(2 * time.Minute)
	guard.Fail("b@example.com")
	guard.Fail("b@example.com")
	require.Len(t, store.entries, 2)

	clock.Advance(3 * time.Minute)
	guard.Fail("c@example.com")
	assert.Len(t, store.entries, 3)

	// Window of "a" is over, lock of "b" is still active
	clock.Advance(6 * time.Minute)
	guard.Fail("d@example.com")
	assert.Len(t, store.entries, 3)
	assert.NotContains(t, store.entries, "a@example.com")
	assert.NotNil(t, guard.Check("b@example.com"))

	clock.Advance(11 * time.Minute)
	guard.Fail("e@example.com")
	assert.Len(t, store.entries, 1)
	assert.Contains(t, store.entries, "e@example.com")
}

func TestLoginGuardCache(t *testing.T) {
	mr := miniredis.RunT(t)

	config.Apply(config.Defaults())
	config.Secret.CacheURI = mr.Addr()

	driver := redis.New()
	require.NoError(t, driver.Connect())
	defer driver.Close()

	prev := cache.Client
	cache.Client = driver
	defer func() { cache.Client = prev }()

	guard := newLoginGuard(new(cacheStore), 2, 10*time.Minute)

	const login = "ana@example.com"

	assert.Equal(t, InvalidAuthCredentials, guard.Fail(login))

	err := guard.Fail(login)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusLocked, err.Status())
	assert.False(t, mr.Exists(cache.LoginAttemptKey(login)))

	err = guard.Check(login)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "10 minuto(s)")

	mr.FastForward(11 * time.Minute)
	assert.Nil(t, guard.Check(login))
}
