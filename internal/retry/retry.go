// Package retry runs operations with bounded attempts and backoff.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Config controls how an operation is retried.
type Config struct {
	// MaxAttempts is the total number of attempts, including the first one.
	MaxAttempts int
	// Backoff is the delay before the second attempt.
	Backoff time.Duration
	// Multiplier grows the delay between attempts when greater than 1.
	Multiplier float64
	// MaxBackoff caps the delay when Multiplier is greater than 1.
	MaxBackoff time.Duration
	// Retryable reports whether an error is worth another attempt. Nil retries every error.
	Retryable func(error) bool
	// OnRetry is called before sleeping between attempts.
	OnRetry func(err error, next time.Duration)
}

// Do invokes fn until it succeeds, the attempts are exhausted, Retryable rejects
// the error or ctx is done. The last error from fn is returned.
func Do(ctx context.Context, cfg Config, fn func(ctx context.Context) error) error {
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	b := backoff.WithContext(
		backoff.WithMaxRetries(newBackOff(cfg), uint64(attempts-1)),
		ctx,
	)

	operation := func() error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if cfg.Retryable != nil && !cfg.Retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	var notify backoff.Notify
	if cfg.OnRetry != nil {
		notify = cfg.OnRetry
	}

	return backoff.RetryNotify(operation, b, notify)
}

func newBackOff(cfg Config) backoff.BackOff {
	if cfg.Multiplier <= 1 {
		return backoff.NewConstantBackOff(cfg.Backoff)
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = cfg.Backoff
	exp.Multiplier = cfg.Multiplier
	exp.RandomizationFactor = 0
	exp.MaxElapsedTime = 0
	if cfg.MaxBackoff > 0 {
		exp.MaxInterval = cfg.MaxBackoff
	}
	exp.Reset()
	return exp
}
