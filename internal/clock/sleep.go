// Package clock provides helpers for waiting between polling cycles.
package clock

import (
	"context"
	"math/rand/v2"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Jitter returns d extended by a random share of up to fraction*d, so
// processes polling the same account do not wake in lockstep.
func Jitter(d time.Duration, fraction float64) time.Duration {
	if d <= 0 || fraction <= 0 {
		return d
	}
	if fraction > 1 {
		fraction = 1
	}
	spread := int64(float64(d) * fraction)
	if spread <= 0 {
		return d
	}
	return d + time.Duration(rand.Int64N(spread+1))
}
