package game

import (
	"context"
	"time"
)

// Driver feeds a Game from a clock and an input source.
type Driver struct {
	Game  *Game
	Input InputSource
	Clock Clock
}

// Frame runs a single iteration.
func (d *Driver) Frame() error {
	var dt time.Duration
	if d.Clock != nil {
		dt = d.Clock.Tick()
	}
	var events []Event
	if d.Input != nil {
		events = d.Input.Poll()
	}
	return d.Game.Update(dt, events)
}

// Run calls Frame on every tick of interval until the game quits or ctx is
// done. A quit is returned as ErrQuit.
func (d *Driver) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := d.Frame(); err != nil {
				return err
			}
		}
	}
}
