// Package retry runs request functions again on failure, with a fixed pause
// between tries and an optional overall deadline. Scraping targets fail
// transiently all the time; every error is considered retryable here and
// callers bound the damage with Attempts and Timeout.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Config bounds a retried operation.
type Config struct {
	// Attempts is the total number of tries, first one included. Zero and one
	// both mean a single try.
	Attempts uint
	// Delay is the pause between consecutive tries.
	Delay time.Duration
	// Timeout, when non-zero, is an overall deadline spanning all tries.
	Timeout time.Duration
}

// Do runs op until it succeeds or the config is exhausted. The context passed
// to op carries the overall deadline when one is configured. Cancellation
// stops retrying and surfaces the context error.
func Do(ctx context.Context, cfg Config, op func(context.Context) error) error {
	_, err := DoValue(ctx, cfg, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}

// DoValue is Do for operations that produce a value.
func DoValue[T any](ctx context.Context, cfg Config, op func(context.Context) (T, error)) (T, error) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	attempts := cfg.Attempts
	if attempts == 0 {
		attempts = 1
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(cfg.Delay), uint64(attempts-1)),
		ctx,
	)

	return backoff.RetryWithData(func() (T, error) {
		return op(ctx)
	}, policy)
}
