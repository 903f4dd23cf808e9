package redis

import (
	"classroom/packages/common/config"
	Error "classroom/packages/common/errors"
	"classroom/packages/common/logger"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var cacheLogger = logger.NewSource("CACHE", logger.Default)

type driver struct {
	client      *redis.Client
	isConnected bool
}

func New() *driver {
	return new(driver)
}

func (d *driver) Connect() error {
	if d.isConnected {
		return errors.New("connection already established")
	}

	cacheLogger.Info("Connecting to DB...", nil)

	d.client = redis.NewClient(&redis.Options{
		Addr:        config.Secret.CacheURI,
		Password:    config.Secret.CachePassword,
		DB:          config.Secret.CacheDB,
		ReadTimeout: config.Cache.SocketTimeout(),
	})

	ctx, cancel := defaultTimeoutContext()
	defer cancel()

	if err := d.client.Ping(ctx).Err(); err != nil {
		d.client.Close()
		return err
	}

	cacheLogger.Info("Connecting to DB: OK", nil)

	d.isConnected = true

	return nil
}

func (d *driver) IsConnected() bool {
	return d.isConnected
}

func (d *driver) Close() *Error.Status {
	if !d.isConnected {
		return Error.NewStatusError(
			"connection not established",
			http.StatusInternalServerError,
		)
	}

	cacheLogger.Info("Disconnecting from DB...", nil)

	if err := d.client.Close(); err != nil {
		return Error.NewStatusError(
			err.Error(),
			http.StatusInternalServerError,
		)
	}

	cacheLogger.Info("Disconnecting from DB: OK", nil)

	d.isConnected = false

	return nil
}

func defaultTimeoutContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), config.Cache.OperationTimeout())
}

// Logs given action and error.
// Returns err converted to *Error.Status.
func logAndConvert(action string, err error) *Error.Status {
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			cacheLogger.Error(
				"Request failed",
				"TIMEOUT: "+action,
				nil,
			)
		} else {
			cacheLogger.Error(
				"Request failed",
				"Failed to "+action+": "+err.Error(),
				nil,
			)
		}
		return Error.StatusInternalError
	}

	cacheLogger.Trace(action, nil)

	return nil
}

func (d *driver) Get(key string) (string, bool) {
	ctx, cancel := defaultTimeoutContext()
	defer cancel()

	cachedData, err := d.client.Get(ctx, key).Result()
	if err == redis.Nil {
		cacheLogger.Trace("Miss: "+key, nil)
		return "", false
	}

	return cachedData, logAndConvert("Get: "+key, err) == nil
}

func checkValueType(value any) error {
	switch value.(type) {
	case string, bool, []byte, int, int64, float64, time.Time:
		return nil
	}
	return fmt.Errorf("invalid cache value type: %T", value)
}

func (d *driver) Set(key string, value any) *Error.Status {
	return d.SetWithTTL(key, value, config.Cache.TTL())
}

func (d *driver) SetWithTTL(key string, value any, ttl time.Duration) *Error.Status {
	if err := checkValueType(value); err != nil {
		return logAndConvert("Set: "+key, err)
	}

	ctx, cancel := defaultTimeoutContext()
	defer cancel()

	err := d.client.Set(ctx, key, value, ttl).Err()

	return logAndConvert("Set: "+key, err)
}

func (d *driver) Increment(key string, ttl time.Duration) (int64, *Error.Status) {
	ctx, cancel := defaultTimeoutContext()
	defer cancel()

	n, err := d.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, logAndConvert("Increment: "+key, err)
	}

	if n == 1 {
		if err := d.client.Expire(ctx, key, ttl).Err(); err != nil {
			return 0, logAndConvert("Expire: "+key, err)
		}
	}

	return n, logAndConvert("Increment: "+key, nil)
}

func (d *driver) TTL(key string) (time.Duration, bool) {
	ctx, cancel := defaultTimeoutContext()
	defer cancel()

	ttl, err := d.client.TTL(ctx, key).Result()
	if logAndConvert("TTL: "+key, err) != nil {
		return 0, false
	}

	// -2 if key doesn't exist, -1 if it has no expiration
	if ttl < 0 {
		return 0, ttl == -1
	}

	return ttl, true
}

func (d *driver) Delete(keys ...string) *Error.Status {
	if len(keys) == 0 {
		return nil
	}

	ctx, cancel := defaultTimeoutContext()
	defer cancel()

	err := d.client.Unlink(ctx, keys...).Err()

	return logAndConvert("Delete: "+strings.Join(keys, ","), err)
}

func (d *driver) FlushAll() *Error.Status {
	ctx, cancel := defaultTimeoutContext()
	defer cancel()

	err := d.client.FlushAll(ctx).Err()

	return logAndConvert("Flush All", err)
}

func (d *driver) DeleteOnNoError(err *Error.Status, keys ...string) *Error.Status {
	if err == nil {
		if e := d.Delete(keys...); e != nil {
			return e
		}
	}

	return err
}
