// Package debounce coalesces bursts of work keyed by target.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs the most recent callback for a key once the key has been
// quiet for the configured window. Each Trigger cancels and re-arms the
// key's timer.
type Debouncer struct {
	window time.Duration

	mu      sync.Mutex
	pending map[string]*entry
	stopped bool
}

type entry struct {
	timer *time.Timer
	fn    func()
}

// New creates a debouncer with the given coalescing window
func New(window time.Duration) *Debouncer {
	return &Debouncer{
		window:  window,
		pending: make(map[string]*entry),
	}
}

// Window returns the coalescing window
func (d *Debouncer) Window() time.Duration {
	return d.window
}

// Trigger schedules fn for key, replacing any callback already waiting on it
func (d *Debouncer) Trigger(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if e, ok := d.pending[key]; ok {
		e.timer.Stop()
	}

	e := &entry{fn: fn}
	e.timer = time.AfterFunc(d.window, func() {
		d.fire(key, e)
	})
	d.pending[key] = e
}

// fire runs the callback if it is still the current one for key
func (d *Debouncer) fire(key string, e *entry) {
	d.mu.Lock()
	current, ok := d.pending[key]
	if !ok || current != e {
		d.mu.Unlock()
		return
	}
	delete(d.pending, key)
	d.mu.Unlock()

	e.fn()
}

// Flush runs every pending callback now, in no particular order
func (d *Debouncer) Flush() {
	d.mu.Lock()
	fns := make([]func(), 0, len(d.pending))
	for key, e := range d.pending {
		e.timer.Stop()
		fns = append(fns, e.fn)
		delete(d.pending, key)
	}
	d.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Pending returns the number of keys with an armed timer
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Stop discards pending callbacks and ignores later triggers
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	for key, e := range d.pending {
		e.timer.Stop()
		delete(d.pending, key)
	}
}
