package match

import (
	"context"
	"errors"
	"time"
)

// DefaultFrameInterval caps the match view at 30 frames per second.
const DefaultFrameInterval = time.Second / 30

// ErrStop may be returned by a frame function to end the loop cleanly.
var ErrStop = errors.New("match loop stopped")

// Loop redraws at a fixed cadence. The next frame is scheduled only after
// the current one has returned, and never sooner than Interval after the
// current one started. Frames never overlap.
type Loop struct {
	Interval time.Duration
	Frame    func(now time.Time) error

	frames int
}

// Frames returns how many frames have run.
func (l *Loop) Frames() int {
	return l.frames
}

// Run drives frames until ctx is cancelled or Frame fails. The pending timer
// is always stopped before Run returns, so no frame fires after teardown.
// Cancellation and ErrStop return nil.
func (l *Loop) Run(ctx context.Context) error {
	interval := l.Interval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case start := <-timer.C:
			// A cancel that raced the timer wins.
			if ctx.Err() != nil {
				return nil
			}
			err := l.Frame(start)
			l.frames++
			if errors.Is(err, ErrStop) {
				return nil
			}
			if err != nil {
				return err
			}
			wait := interval - time.Since(start)
			if wait < 0 {
				wait = 0
			}
			timer.Reset(wait)
		}
	}
}
