package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Clock drives frames at a fixed interval
// Frames never overlap: a slow frame delays the next one instead of queueing
type Clock struct {
	interval atomic.Int64 // time.Duration
	frames   atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
}

// NewClock creates a clock at fps frames per second, clamped to at least 1
func NewClock(fps int) *Clock {
	c := &Clock{stopChan: make(chan struct{})}
	c.SetFPS(fps)
	return c
}

// SetFPS changes the rate; the running loop picks it up on its next frame
func (c *Clock) SetFPS(fps int) {
	c.interval.Store(int64(time.Second / time.Duration(max(1, fps))))
}

func (c *Clock) Interval() time.Duration {
	return time.Duration(c.interval.Load())
}

// Frames returns the number of frames run so far
func (c *Clock) Frames() uint64 {
	return c.frames.Load()
}

// Run calls frame once per interval until frame returns false, Stop is called
// or ctx ends. Only ctx cancellation is reported as an error
func (c *Clock) Run(ctx context.Context, frame func() bool) error {
	current := c.Interval()
	ticker := time.NewTicker(current)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.stopChan:
			return nil
		case <-ticker.C:
			c.frames.Add(1)
			if !frame() {
				return nil
			}
			if next := c.Interval(); next != current {
				current = next
				ticker.Reset(current)
			}
		}
	}
}

// Stop ends Run; idempotent
func (c *Clock) Stop() {
	c.stopOnce.Do(func() { close(c.stopChan) })
}
