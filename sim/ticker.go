package sim

import (
	"context"
	"time"
)

// Ticker paces the generation loop. Wait blocks until the next frame is due
// or the context is cancelled; it is the loop's only suspension point.
type Ticker interface {
	Wait(ctx context.Context) error
}

// IntervalTicker waits a fixed delay between frames. A zero or negative
// interval returns immediately, still honoring cancellation.
type IntervalTicker struct {
	interval time.Duration
}

func NewIntervalTicker(interval time.Duration) *IntervalTicker {
	return &IntervalTicker{interval: interval}
}

// Wait blocks for the configured interval or until ctx is cancelled.
func (t *IntervalTicker) Wait(ctx context.Context) error {
	if t.interval <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(t.interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
