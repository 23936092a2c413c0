// Package timer implements the bench countdown used between rallies and
// during timeouts. It knows nothing about the match.
package timer

import (
	"context"
	"fmt"
	"time"
)

// Common countdown lengths in seconds.
const (
	DefaultSeconds = 60
	TimeoutSeconds = 30
	MinimumSeconds = 1
)

// Countdown counts whole seconds down to zero. The zero value is an expired,
// paused countdown.
type Countdown struct {
	remaining int
	running   bool
}

// New returns a paused countdown of seconds. Non-positive values fall back
// to DefaultSeconds.
func New(seconds int) *Countdown {
	c := &Countdown{}
	c.Reset(seconds)
	return c
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int { return c.remaining }

// Running reports whether ticks currently count down.
func (c *Countdown) Running() bool { return c.running }

// Expired reports whether the countdown reached zero.
func (c *Countdown) Expired() bool { return c.remaining == 0 }

// Start resumes counting. An expired countdown stays paused.
func (c *Countdown) Start() {
	if c.remaining > 0 {
		c.running = true
	}
}

// Pause stops counting.
func (c *Countdown) Pause() { c.running = false }

// Toggle flips between running and paused.
func (c *Countdown) Toggle() {
	if c.running {
		c.Pause()
		return
	}
	c.Start()
}

// Reset pauses the countdown and sets it to seconds.
func (c *Countdown) Reset(seconds int) {
	if seconds < MinimumSeconds {
		seconds = DefaultSeconds
	}
	c.remaining = seconds
	c.running = false
}

// Tick advances one second while running. It returns true on the tick that
// reaches zero, after which the countdown is paused.
func (c *Countdown) Tick() bool {
	if !c.running || c.remaining == 0 {
		return false
	}
	c.remaining--
	if c.remaining == 0 {
		c.running = false
		return true
	}
	return false
}

// String formats the remaining time as m:ss.
func (c *Countdown) String() string {
	return Format(c.remaining)
}

// Format renders seconds as m:ss.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Ticker delivers periodic ticks. NewTicker adapts time.Ticker; tests supply
// a manual one.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realTicker struct {
	t *time.Ticker
}

// NewTicker returns a Ticker firing every d.
func NewTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// Run starts c and ticks it on every ticker event, calling onTick after each
// tick. It returns nil when the countdown expires and ctx.Err() when ctx is
// cancelled first. The ticker is stopped on return.
func Run(ctx context.Context, c *Countdown, ticker Ticker, onTick func(*Countdown)) error {
	defer ticker.Stop()
	c.Start()
	if !c.Running() {
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			c.Pause()
			return ctx.Err()
		case <-ticker.C():
			expired := c.Tick()
			if onTick != nil {
				onTick(c)
			}
			if expired {
				return nil
			}
		}
	}
}
