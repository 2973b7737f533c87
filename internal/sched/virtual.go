package sched

import (
	"sort"
	"time"
)

// Virtual is a deterministic Scheduler with a manually advanced clock. It is
// not safe for concurrent use: the goroutine calling Advance is the
// scheduler thread.
type Virtual struct {
	now     time.Time
	seq     uint64
	pending []*virtualTimer
}

type virtualTimer struct {
	at      time.Time
	seq     uint64
	fn      func()
	stopped bool
}

func (t *virtualTimer) Stop() { t.stopped = true }

// NewVirtual creates a Virtual scheduler whose clock reads start.
func NewVirtual(start time.Time) *Virtual {
	return &Virtual{now: start}
}

// Now returns the virtual time.
func (v *Virtual) Now() time.Time { return v.now }

// AfterFunc schedules fn at Now()+d.
func (v *Virtual) AfterFunc(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	t := &virtualTimer{at: v.now.Add(d), seq: v.seq, fn: fn}
	v.seq++
	v.pending = append(v.pending, t)
	return t
}

// Every runs step every d until it returns false.
func (v *Virtual) Every(d time.Duration, step func() bool) Handle {
	return every(v, d, step)
}

// Post runs fn immediately; the caller already is the scheduler thread.
func (v *Virtual) Post(fn func()) { fn() }

// Advance moves the clock forward by d, running every callback that falls
// due in order of deadline, then scheduling order. Callbacks scheduled by
// other callbacks run too if they fall inside the window.
func (v *Virtual) Advance(d time.Duration) {
	target := v.now.Add(d)
	for {
		next := v.popDue(target)
		if next == nil {
			break
		}
		v.now = next.at
		next.fn()
	}
	v.now = target
}

// Pending returns the number of live timers.
func (v *Virtual) Pending() int {
	n := 0
	for _, t := range v.pending {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (v *Virtual) popDue(target time.Time) *virtualTimer {
	live := v.pending[:0]
	for _, t := range v.pending {
		if !t.stopped {
			live = append(live, t)
		}
	}
	v.pending = live
	if len(v.pending) == 0 {
		return nil
	}
	sort.SliceStable(v.pending, func(i, j int) bool {
		a, b := v.pending[i], v.pending[j]
		if a.at.Equal(b.at) {
			return a.seq < b.seq
		}
		return a.at.Before(b.at)
	})
	first := v.pending[0]
	if first.at.After(target) {
		return nil
	}
	v.pending = v.pending[1:]
	return first
}
