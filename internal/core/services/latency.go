package services

import (
	"context"
	"time"
)

// simulateLatency models the network round-trip of the simulated payment API.
// It must never be called while holding a lock. A zero delay returns
// immediately, which is how tests run.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
