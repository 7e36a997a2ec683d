// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package debounce delays a callback until activity has paused for a fixed
// interval. Only the trailing call in a burst runs.
package debounce

import (
	"sync"
	"time"
)

// Dispatcher runs a fired callback. Hosts with an event loop use it to hop
// the callback back onto that loop.
type Dispatcher func(fn func())

// Option configures a Debouncer.
type Option func(*Debouncer)

// WithDispatcher routes fired callbacks through d instead of running them on
// the timer goroutine.
func WithDispatcher(d Dispatcher) Option {
	return func(db *Debouncer) {
		if d != nil {
			db.dispatch = d
		}
	}
}

// Debouncer holds a single pending slot. Triggering again before the delay
// elapses replaces the pending callback and restarts the wait.
type Debouncer struct {
	delay    time.Duration
	dispatch Dispatcher

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
	gen     uint64
}

// New returns a Debouncer with the given delay.
func New(delay time.Duration, opts ...Option) *Debouncer {
	d := &Debouncer{
		delay:    delay,
		dispatch: func(fn func()) { fn() },
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Delay returns the configured delay.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Trigger schedules fn to run after the delay, superseding anything pending.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.gen++
	gen := d.gen
	d.pending = fn
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// fire runs the pending callback if gen is still current. A timer that was
// stopped too late to prevent its goroutine from starting lands here with a
// stale generation and does nothing.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.pending == nil {
		d.mu.Unlock()
		return
	}
	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	d.dispatch(fn)
}

// Cancel drops the pending callback. It reports whether one was pending.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.clear() != nil
}

// Flush runs the pending callback immediately on the caller's goroutine,
// bypassing the dispatcher. It reports whether one was pending.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	fn := d.clear()
	d.mu.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}

// Pending reports whether a callback is waiting to fire.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.pending != nil
}

// clear stops the timer and invalidates the current generation. Callers
// hold mu.
func (d *Debouncer) clear() func() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	fn := d.pending
	d.pending = nil
	return fn
}
