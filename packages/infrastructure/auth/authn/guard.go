package authn

import (
	"classroom/packages/common/config"
	Error "classroom/packages/common/errors"
	"classroom/packages/common/logger"
	"classroom/packages/infrastructure/cache"
	"net/http"
	"strconv"
	"sync"
	"time"
)

var authnLogger = logger.NewSource("AUTHN", logger.Default)

type attemptsStore interface {
	// Registers failed attempt and returns amount of failed attempts within window.
	Fail(key string, window time.Duration) (int, *Error.Status)
	Lock(key string, duration time.Duration) *Error.Status
	// Returns remaining lock time, false if key isn't locked.
	LockedFor(key string) (time.Duration, bool)
	Reset(key string) *Error.Status
}

func newLockedError(remaining time.Duration) *Error.Status {
	minutes := int(remaining/time.Minute) + 1
	if remaining%time.Minute == 0 && remaining > 0 {
		minutes = int(remaining / time.Minute)
	}

	return Error.NewStatusError(
		"Conta bloqueada por segurança! Tente novamente em "+strconv.Itoa(minutes)+" minuto(s).",
		http.StatusLocked,
	)
}

// Locks login after too many failed attempts.
type LoginGuard struct {
	store        attemptsStore
	maxAttempts  int
	lockDuration time.Duration
}

// Creates guard using config, attempts are stored in cache
// if it's enabled and in memory otherwise.
func NewLoginGuard() *LoginGuard {
	var store attemptsStore

	if config.Cache.Enabled {
		store = new(cacheStore)
	} else {
		store = newMemoryStore(time.Now)
	}

	return newLoginGuard(store, config.Auth.MaxLoginAttempts, config.Auth.LoginLockDuration())
}

func newLoginGuard(store attemptsStore, maxAttempts int, lockDuration time.Duration) *LoginGuard {
	return &LoginGuard{
		store:        store,
		maxAttempts:  maxAttempts,
		lockDuration: lockDuration,
	}
}

// Returns 423 error if login is locked.
func (g *LoginGuard) Check(login string) *Error.Status {
	if remaining, locked := g.store.LockedFor(login); locked {
		return newLockedError(remaining)
	}
	return nil
}

// Registers failed attempt. Returns 423 error if login got locked,
// InvalidAuthCredentials otherwise.
func (g *LoginGuard) Fail(login string) *Error.Status {
	n, err := g.store.Fail(login, g.lockDuration)
	if err != nil {
		return InvalidAuthCredentials
	}

	if n >= g.maxAttempts {
		authnLogger.Warning("Login locked after "+strconv.Itoa(n)+" failed attempts: "+login, nil)

		if err := g.store.Lock(login, g.lockDuration); err != nil {
			return InvalidAuthCredentials
		}
		g.store.Reset(login)

		return newLockedError(g.lockDuration)
	}

	return InvalidAuthCredentials
}

func (g *LoginGuard) Succeed(login string) {
	if err := g.store.Reset(login); err != nil {
		authnLogger.Error("Failed to reset login attempts", err.Error(), nil)
	}
}

type memoryEntry struct {
	failures    int
	windowEnd   time.Time
	lockedUntil time.Time
}

type memoryStore struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]*memoryEntry
}

func newMemoryStore(now func() time.Time) *memoryStore {
	return &memoryStore{
		now:     now,
		entries: make(map[string]*memoryEntry),
	}
}

func (s *memoryStore) entry(key string) *memoryEntry {
	e, ok := s.entries[key]
	if !ok {
		e = new(memoryEntry)
		s.entries[key] = e
	}
	return e
}

// Drops entries with expired attempts window and lock.
func (s *memoryStore) prune(now time.Time) {
	for key, e := range s.entries {
		if now.After(e.windowEnd) && !e.lockedUntil.After(now) {
			delete(s.entries, key)
		}
	}
}

func (s *memoryStore) Fail(key string, window time.Duration) (int, *Error.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.prune(now)
	e := s.entry(key)

	if now.After(e.windowEnd) {
		e.failures = 0
		e.windowEnd = now.Add(window)
	}

	e.failures++

	return e.failures, nil
}

func (s *memoryStore) Lock(key string, duration time.Duration) *Error.Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entry(key).lockedUntil = s.now().Add(duration)

	return nil
}

func (s *memoryStore) LockedFor(key string) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return 0, false
	}

	remaining := e.lockedUntil.Sub(s.now())
	if remaining <= 0 {
		if e.failures == 0 {
			delete(s.entries, key)
		}
		return 0, false
	}

	return remaining, true
}

func (s *memoryStore) Reset(key string) *Error.Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		e.failures = 0
		e.windowEnd = time.Time{}
		if !e.lockedUntil.After(s.now()) {
			delete(s.entries, key)
		}
	}

	return nil
}

// Uses cache.Client, counter key expires after window.
type cacheStore struct {
	//
}

func (s *cacheStore) Fail(key string, window time.Duration) (int, *Error.Status) {
	n, err := cache.Client.Increment(cache.LoginAttemptKey(key), window)
	return int(n), err
}

func (s *cacheStore) Lock(key string, duration time.Duration) *Error.Status {
	return cache.Client.SetWithTTL(cache.LoginLockKey(key), true, duration)
}

func (s *cacheStore) LockedFor(key string) (time.Duration, bool) {
	return cache.Client.TTL(cache.LoginLockKey(key))
}

func (s *cacheStore) Reset(key string) *Error.Status {
	return cache.Client.Delete(cache.LoginAttemptKey(key))
}
