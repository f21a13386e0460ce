// Package retry provides a small backoff helper for transient failures.
package retry

import (
	"context"
	"fmt"
	"time"
)

// Policy controls backoff behavior. MaxAttempts <= 0 retries without limit,
// which callers use for long-lived reconnect loops.
type Policy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	OnRetry        func(attempt int, err error, backoff time.Duration)
}

// Classify reports whether an error is permanent; permanent errors abort
// immediately without further attempts. A nil Classify treats every error
// as transient.
type Classify func(err error) bool

// Operation is one attempt of the retried work.
type Operation[T any] func() (T, error)

// Do runs op with exponential backoff until it succeeds, returns a permanent
// error, exhausts MaxAttempts, or ctx is cancelled.
func Do[T any](ctx context.Context, p Policy, permanent Classify, op Operation[T]) (T, error) {
	backoff := p.InitialBackoff

	for attempt := 1; ; attempt++ {
		val, err := op()
		if err == nil {
			return val, nil
		}

		if permanent != nil && permanent(err) {
			var zero T
			return zero, &PermanentError{Err: err}
		}

		if p.MaxAttempts > 0 && attempt >= p.MaxAttempts {
			var zero T
			return zero, fmt.Errorf("failed after %d attempts: %w", p.MaxAttempts, err)
		}

		if p.OnRetry != nil {
			p.OnRetry(attempt, err, backoff)
		}

		select {
		case <-time.After(backoff):
			backoff *= 2
			if p.MaxBackoff > 0 && backoff > p.MaxBackoff {
				backoff = p.MaxBackoff
			}
		case <-ctx.Done():
			var zero T
			return zero, fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		}
	}
}

// DoVoid is Do for operations without a result value.
func DoVoid(ctx context.Context, p Policy, permanent Classify, op func() error) error {
	_, err := Do(ctx, p, permanent, func() (struct{}, error) { return struct{}{}, op() })
	return err
}

// PermanentError wraps an error Classify judged not worth retrying.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }
