// Package testutil provides shared fakes for tests that drive time.
package testutil

import (
	"sync"
	"time"
)

// FakeTicker is a manually driven ticker. Each Advance delivers one tick
// and blocks until it is received or the ticker is stopped. The clock only
// moves on delivery, so a receiver reading Now before its first tick sees
// the start time no matter how the goroutines are scheduled.
type FakeTicker struct {
	ch   chan time.Time
	done chan struct{}
	once sync.Once

	mu  sync.Mutex
	now time.Time
}

// NewFakeTicker returns a ticker whose clock starts at start.
func NewFakeTicker(start time.Time) *FakeTicker {
	return &FakeTicker{
		ch:   make(chan time.Time),
		done: make(chan struct{}),
		now:  start,
	}
}

// C returns the tick channel.
func (f *FakeTicker) C() <-chan time.Time { return f.ch }

// Stop stops the ticker; pending and future Advance calls return false.
func (f *FakeTicker) Stop() {
	f.once.Do(func() { close(f.done) })
}

// Now returns the current fake time.
func (f *FakeTicker) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Advance delivers a tick stamped d after the current fake time and moves
// the clock to that time once the tick is received. It reports whether the
// tick was received before the ticker stopped; on false the clock does not
// move.
func (f *FakeTicker) Advance(d time.Duration) bool {
	f.mu.Lock()
	t := f.now.Add(d)
	f.mu.Unlock()

	select {
	case <-f.done:
		return false
	default:
	}

	select {
	case f.ch <- t:
		f.mu.Lock()
		f.now = t
		f.mu.Unlock()
		return true
	case <-f.done:
		return false
	}
}

// Stopped reports whether Stop has been called.
func (f *FakeTicker) Stopped() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// RunUntilStopped advances by step until the ticker stops or limit ticks
// have been delivered, and returns the number of ticks received.
func (f *FakeTicker) RunUntilStopped(step time.Duration, limit int) int {
	n := 0
	for n < limit && f.Advance(step) {
		n++
	}
	return n
}
