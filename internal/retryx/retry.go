// Package retryx bounds a single fallible operation with a fixed number of
// attempts and a constant delay between them. It is used for the remote leg
// of asset uploads, where transient failures are expected.
package retryx

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// Do runs fn until it succeeds or attempts are exhausted, sleeping delay
// between tries. The first success wins; after the last failure the last
// error is returned to the caller rather than being dropped. attempts below
// 2 is raised to 2, so at least one retry always happens.
func Do(ctx context.Context, attempts int, delay time.Duration, fn func(ctx context.Context) error) error {
	if attempts < 2 {
		attempts = 2
	}
	if delay <= 0 {
		delay = time.Millisecond
	}

	b := retry.WithMaxRetries(uint64(attempts-1), retry.NewConstant(delay))

	return retry.Do(ctx, b, func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}
