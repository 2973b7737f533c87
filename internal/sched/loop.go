package sched

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
)

const taskQueueSize = 64

// Loop is the production Scheduler. Timers run on a clockwork.Clock; fired
// timers and posted callbacks are queued on Tasks, which exactly one
// goroutine must drain and execute.
type Loop struct {
	clock     clockwork.Clock
	tasks     chan func()
	done      chan struct{}
	closeOnce sync.Once
}

// NewLoop creates a Loop driven by clock. A nil clock uses the real clock.
func NewLoop(clock clockwork.Clock) *Loop {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Loop{
		clock: clock,
		tasks: make(chan func(), taskQueueSize),
		done:  make(chan struct{}),
	}
}

// Tasks returns the queue of callbacks ready to run.
func (l *Loop) Tasks() <-chan func() { return l.tasks }

// Now returns the clock's current time.
func (l *Loop) Now() time.Time { return l.clock.Now() }

// AfterFunc queues fn on Tasks once d has elapsed.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Handle {
	h := &loopHandle{}
	h.timer = l.clock.AfterFunc(d, func() {
		l.enqueue(func() {
			if h.stopped.Load() {
				return
			}
			fn()
		})
	})
	return h
}

// Every runs step every d on the loop until it returns false.
func (l *Loop) Every(d time.Duration, step func() bool) Handle {
	return every(l, d, step)
}

// Post queues fn on Tasks.
func (l *Loop) Post(fn func()) {
	l.enqueue(fn)
}

// Run executes queued callbacks on the calling goroutine until until is
// closed or ctx is cancelled.
func (l *Loop) Run(ctx context.Context, until <-chan struct{}) error {
	for {
		select {
		case fn := <-l.tasks:
			fn()
		case <-until:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close releases producers blocked on a full queue. Callbacks queued after
// Close are dropped.
func (l *Loop) Close() {
	l.closeOnce.Do(func() { close(l.done) })
}

func (l *Loop) enqueue(fn func()) {
	select {
	case <-l.done:
		return
	default:
	}
	select {
	case l.tasks <- fn:
	case <-l.done:
	}
}

type loopHandle struct {
	timer   clockwork.Timer
	stopped atomic.Bool
}

func (h *loopHandle) Stop() {
	h.stopped.Store(true)
	h.timer.Stop()
}
