package testutil

import (
	"sync/atomic"
	"time"
)

// ManualTicker is a ticker driven by the test instead of the wall clock.
// It satisfies timer.Ticker.
type ManualTicker struct {
	ch      chan time.Time
	stopped atomic.Bool
}

// NewManualTicker creates a ticker with a buffered channel so Tick never
// blocks a single-goroutine test.
func NewManualTicker(buffer int) *ManualTicker {
	if buffer <= 0 {
		buffer = 1
	}
	return &ManualTicker{ch: make(chan time.Time, buffer)}
}

// C returns the tick channel.
func (m *ManualTicker) C() <-chan time.Time {
	return m.ch
}

// Tick delivers one tick.
func (m *ManualTicker) Tick() {
	m.ch <- time.Time{}
}

// Stop records that the consumer stopped the ticker.
func (m *ManualTicker) Stop() {
	m.stopped.Store(true)
}

// Stopped reports whether Stop was called.
func (m *ManualTicker) Stopped() bool {
	return m.stopped.Load()
}
