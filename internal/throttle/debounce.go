// Package throttle provides the cancellable timer primitives the board
// uses to coalesce scroll events: one short-window debouncer for the
// windowing recompute and one longer one for the auto-scroll decision.
package throttle

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid triggers into a single trailing-edge callback.
// At most one timer is pending at a time: a new Trigger before the window
// elapses cancels the stale timer and arms a fresh one.
//
// Cancel is idempotent and safe to call when nothing was ever armed,
// so teardown paths can always cancel unconditionally.
type Debouncer struct {
	mu     sync.Mutex
	window time.Duration
	timer  *time.Timer
}

// NewDebouncer creates a Debouncer with the given coalescing window.
// A non-positive window is rounded up to 1ms so a zero-configured
// debouncer still coalesces within one timer tick instead of panicking.
func NewDebouncer(window time.Duration) *Debouncer {
	if window <= 0 {
		window = time.Millisecond
	}
	return &Debouncer{window: window}
}

// Trigger schedules fn to run once the window elapses, replacing any
// pending callback. fn runs on the timer goroutine; callers that need
// loop affinity should have fn post a message instead of mutating state.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		if d.timer == t {
			d.timer = nil
		}
		d.mu.Unlock()
		fn()
	})
	d.timer = t
}

// Cancel drops any pending callback. Calling it repeatedly, or before the
// first Trigger, is a no-op.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a callback is currently armed.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Window returns the coalescing window.
func (d *Debouncer) Window() time.Duration {
	return d.window
}
