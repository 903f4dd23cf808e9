package cache

import (
	"classroom/packages/common/config"
	Error "classroom/packages/common/errors"
	"classroom/packages/common/logger"
	"classroom/packages/infrastructure/cache/noop"
	"classroom/packages/infrastructure/cache/redis"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var cacheLogger = logger.NewSource("CACHE", logger.Default)

type client interface {
	Connect() error
	Close() *Error.Status
	IsConnected() bool
	Get(key string) (string, bool)
	// Value must be one of: string, bool, []byte, int, int64, float64, time.Time.
	Set(key string, value any) *Error.Status
	Delete(keys ...string) *Error.Status
	FlushAll() *Error.Status
	// Deletes keys only if err is nil. Returns err or deletion error.
	DeleteOnNoError(err *Error.Status, keys ...string) *Error.Status
	// Increments counter at key, ttl is applied when counter is created.
	Increment(key string, ttl time.Duration) (int64, *Error.Status)
	SetWithTTL(key string, value any, ttl time.Duration) *Error.Status
	// Returns remaining time to live of the key, false if key doesn't exist.
	TTL(key string) (time.Duration, bool)
}

// Noop client until Init is called.
var Client client = noop.New()

var isInit bool = false

func Init() {
	if isInit {
		cacheLogger.Panic("Failed to initialize cache", "Cache already initialized", nil)
	}

	if config.Cache.Enabled {
		Client = redis.New()
	} else {
		cacheLogger.Warning("Cache is disabled", nil)
		Client = noop.New()
	}

	isInit = true
}

// Decodes cached JSON at key into dest. On decoding failure key is deleted.
func GetJSON(key string, dest any) bool {
	cached, hit := Client.Get(key)
	if !hit {
		return false
	}

	if err := jsoniter.UnmarshalFromString(cached, dest); err != nil {
		cacheLogger.Error("Failed to decode cached value: "+key, err.Error(), nil)
		Client.Delete(key)
		return false
	}

	return true
}

func SetJSON(key string, value any) *Error.Status {
	encoded, err := jsoniter.MarshalToString(value)
	if err != nil {
		cacheLogger.Error("Failed to encode value: "+key, err.Error(), nil)
		return Error.StatusInternalError
	}

	return Client.Set(key, encoded)
}
