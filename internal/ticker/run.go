package ticker

import (
	"context"
	"time"
)

// Clock is a cadence source for Run.
type Clock interface {
	// After returns a channel that receives once d has elapsed.
	After(d time.Duration) <-chan time.Time
}

// SystemClock is a Clock backed by the time package.
type SystemClock struct{}

// After implements Clock.
func (SystemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// Run starts t on plan and delivers ticks from clock until the ticker stops
// itself, observe stops it, or ctx is done. observe, when non-nil, is called
// with the state after start and after every tick. It returns ctx.Err() when cancelled and
// leaves the ticker stopped, unless the ticker was already running when Run
// was called, in which case Run returns immediately and touches nothing.
func Run(ctx context.Context, t *Ticker, plan Plan, cadence time.Duration, clock Clock, observe func(State)) error {
	if clock == nil {
		clock = SystemClock{}
	}
	tick, ok := t.Start(plan, cadence)
	if !ok && t.Running() {
		// Already driven by another owner.
		return nil
	}
	defer t.Stop()

	if observe != nil {
		observe(t.State())
	}

	for ok && t.Running() {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-clock.After(t.Cadence()):
		}

		tick, ok = t.Advance(tick)
		if observe != nil {
			observe(t.State())
		}
	}
	return nil
}
