// Package sched provides the single-threaded cooperative scheduler that the
// loading sequence runs on. Every callback handed to a Scheduler (timer
// expiries, repeated frame steps, posted external events) runs on one logical
// thread, so state owned by that thread needs no locking.
package sched

import "time"

// Scheduler delivers delayed and posted callbacks on a single logical thread.
type Scheduler interface {
	// Now returns the scheduler's current time.
	Now() time.Time
	// AfterFunc runs fn once after d has elapsed.
	AfterFunc(d time.Duration, fn func()) Handle
	// Every runs step every d until step returns false or the handle is stopped.
	Every(d time.Duration, step func() bool) Handle
	// Post runs fn on the scheduler thread as soon as possible. Safe to call
	// from any goroutine.
	Post(fn func())
}

// Handle cancels a scheduled callback. After Stop returns the callback never
// runs, even if its timer already fired and the call is queued.
type Handle interface {
	Stop()
}

// repeater chains AfterFunc calls to implement Every on any Scheduler.
// All fields are owned by the scheduler thread.
type repeater struct {
	s       Scheduler
	d       time.Duration
	step    func() bool
	cur     Handle
	stopped bool
}

func every(s Scheduler, d time.Duration, step func() bool) Handle {
	r := &repeater{s: s, d: d, step: step}
	r.schedule()
	return r
}

func (r *repeater) schedule() {
	r.cur = r.s.AfterFunc(r.d, r.fire)
}

func (r *repeater) fire() {
	if r.stopped {
		return
	}
	if !r.step() {
		r.stopped = true
		return
	}
	if !r.stopped { // step may have stopped us
		r.schedule()
	}
}

func (r *repeater) Stop() {
	r.stopped = true
	if r.cur != nil {
		r.cur.Stop()
	}
}
