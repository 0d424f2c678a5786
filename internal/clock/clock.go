// Package clock provides the context-aware waits used to simulate latency.
package clock

import (
	"context"
	"time"
)

// Sleep blocks for d or until ctx is done, whichever comes first. It returns
// the context error when ctx ends the wait early.
func Sleep(ctx context.Context, d time.Duration) error {
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
