// Package debounce collapses bursts of events into one call carrying the
// last event's value.
package debounce

import (
	"sync"
	"time"
)

const DefaultWait = 300 * time.Millisecond

// Debouncer calls fn with the last triggered value. Calls to fn never
// overlap.
type Debouncer[T any] struct {
	mu      sync.Mutex
	running sync.Mutex
	wait    time.Duration
	fn      func(T)
	timer   *time.Timer
	pending bool
	value   T
	// gen counts Triggers; a timer only fires for the generation it was
	// armed with.
	gen uint64
}

// New returns a debouncer that calls fn once wait has passed without a new
// Trigger. wait <= 0 means DefaultWait.
func New[T any](wait time.Duration, fn func(T)) *Debouncer[T] {
	if wait <= 0 {
		wait = DefaultWait
	}
	return &Debouncer[T]{wait: wait, fn: fn}
}

// Trigger replaces any pending call with one for v.
func (d *Debouncer[T]) Trigger(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.value = v
	d.pending = true
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.wait, func() { d.fire(gen) })
}

// Flush runs the pending call now, if there is one, and waits for any call
// already in progress.
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	gen := d.gen
	d.mu.Unlock()
	d.fire(gen)
}

// Stop drops the pending call.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = false
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.running.Lock()
	defer d.running.Unlock()
	d.mu.Lock()
	if !d.pending || gen != d.gen {
		d.mu.Unlock()
		return
	}
	v := d.value
	d.pending = false
	d.mu.Unlock()
	d.fn(v)
}
