// Cache driver which does nothing, used when cache is disabled.
package noop

import (
	Error "classroom/packages/common/errors"
	"net/http"
	"time"
)

var errUnsupported = Error.NewStatusError(
	"cache is disabled",
	http.StatusInternalServerError,
)

type driver struct {
	//
}

func New() *driver {
	return new(driver)
}

func (d *driver) Connect() error {
	return nil
}

func (d *driver) Close() *Error.Status {
	return nil
}

func (d *driver) IsConnected() bool {
	return false
}

func (d *driver) Get(key string) (string, bool) {
	return "", false
}

func (d *driver) Set(key string, value any) *Error.Status {
	return nil
}

func (d *driver) SetWithTTL(key string, value any, ttl time.Duration) *Error.Status {
	return nil
}

func (d *driver) Increment(key string, ttl time.Duration) (int64, *Error.Status) {
	return 0, errUnsupported
}

func (d *driver) TTL(key string) (time.Duration, bool) {
	return 0, false
}

func (d *driver) Delete(keys ...string) *Error.Status {
	return nil
}

func (d *driver) FlushAll() *Error.Status {
	return nil
}

func (d *driver) DeleteOnNoError(err *Error.Status, keys ...string) *Error.Status {
	return err
}
