package structs

import (
	Error "classroom/packages/common/errors"
	"context"
	"errors"
	"time"
)

// Runs req and waits until it's done or timeout is exceeded.
// Returns Error.StatusTimeout on timeout.
// req still runs in background after timeout, so it must respect ctx.
func SetTimeout(ctx context.Context, timeout time.Duration, req func(ctx context.Context)) error {
	// If timeout is zero or negative, don't set a timeout
	if timeout <= 0 {
		req(ctx)
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan struct{})

	go func() {
		req(ctx)
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		err := ctx.Err()
		if errors.Is(err, context.DeadlineExceeded) {
			return Error.StatusTimeout
		}
		return err
	}
}
