package view

import (
	"sync"
	"time"
)

// SearchDebounce is the settle window applied to admin search inputs.
const SearchDebounce = 500 * time.Millisecond

// Debouncer coalesces rapid triggers into a single callback once input has
// settled for the configured window. Only the final value is delivered.
type Debouncer struct {
	window time.Duration
	fn     func(value string)

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer builds a debouncer that invokes fn on its own timer goroutine.
func NewDebouncer(window time.Duration, fn func(value string)) *Debouncer {
	return &Debouncer{window: window, fn: fn}
}

// Trigger restarts the settle window with a new value. Any pending delivery
// is dropped in favor of this one.
func (d *Debouncer) Trigger(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.fn(value)
	})
}

// Stop tears down any pending delivery. Used when the owning component goes
// away so a settled timer never fires into dead state.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
