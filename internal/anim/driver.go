package anim

import (
	"context"
	"time"
)

// DefaultInterval is the tick cadence of an animation.
const DefaultInterval = 20 * time.Millisecond

// Run drives c from a ticker until it finishes or ctx is canceled, calling
// draw with every emitted state. The first frame is drawn immediately.
// The ticker is released on return; Run returns nil once the clock has
// finished and ctx.Err() on cancellation.
func Run(ctx context.Context, c *Clock, interval time.Duration, draw func(State)) error {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if st, ok := c.Tick(); ok {
		draw(st)
	}
	if c.Phase() == Finished {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			st, ok := c.Tick()
			if !ok {
				return nil
			}
			draw(st)
			if c.Phase() == Finished {
				return nil
			}
		}
	}
}
