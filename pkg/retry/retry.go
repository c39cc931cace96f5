// Package retry provides the single retry-with-backoff policy shared by all
// pipeline stages: a fixed number of attempts with deterministic exponential
// delays (base, 2*base, ...) between them.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy describes a bounded exponential backoff schedule. The zero value is
// not useful; use DefaultPolicy or fill in MaxAttempts and BaseDelay.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// BaseDelay is the wait after the first failed attempt; each subsequent
	// wait doubles.
	BaseDelay time.Duration
	// Notify, if set, is called before each wait with the attempt error and
	// the upcoming delay.
	Notify func(err error, wait time.Duration)
	// Timer overrides the wall-clock timer between attempts. Tests inject a
	// fake here so backoff schedules can be asserted without sleeping.
	Timer backoff.Timer
}

// DefaultPolicy returns the stage policy: 3 attempts, 2s base delay,
// so failed runs wait 2s then 4s.
func DefaultPolicy() Policy {
	return Policy{MaxAttempts: 3, BaseDelay: 2 * time.Second}
}

// Permanent marks err as non-retryable; Do returns it immediately.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Do runs op under the policy. Only the final attempt's error is returned.
// Context cancellation aborts the wait between attempts.
func (p Policy) Do(ctx context.Context, op func() error) error {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = p.BaseDelay
	expo.RandomizationFactor = 0
	expo.Multiplier = 2
	expo.MaxInterval = 10 * time.Minute
	expo.MaxElapsedTime = 0
	expo.Reset()

	b := backoff.WithContext(backoff.WithMaxRetries(expo, uint64(attempts-1)), ctx)

	var notify backoff.Notify
	if p.Notify != nil {
		notify = backoff.Notify(p.Notify)
	}

	if p.Timer != nil {
		return backoff.RetryNotifyWithTimer(op, b, notify, p.Timer)
	}
	return backoff.RetryNotify(op, b, notify)
}
