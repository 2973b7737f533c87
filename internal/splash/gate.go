package splash

import (
	"context"
	"sync"
)

// Reason records which trigger requested completion.
type Reason int

const (
	ReasonTimer Reason = iota + 1
	ReasonEnded
	ReasonError
	ReasonCap
)

var reasonNames = [...]string{
	ReasonTimer: "timer",
	ReasonEnded: "ended",
	ReasonError: "error",
	ReasonCap:   "cap",
}

func (r Reason) String() string {
	if r > 0 && int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "unknown"
}

// Gate is a one-shot completion latch. The first Signal invokes the notify
// callback and closes Done; every later Signal is a no-op. Safe for
// concurrent use.
type Gate struct {
	mu     sync.Mutex
	fired  bool
	reason Reason
	notify func()
	done   chan struct{}
}

// NewGate creates a Gate that calls notify exactly once. notify may be nil.
func NewGate(notify func()) *Gate {
	return &Gate{notify: notify, done: make(chan struct{})}
}

// Signal requests completion and reports whether this call fired the latch.
func (g *Gate) Signal(r Reason) bool {
	g.mu.Lock()
	if g.fired {
		g.mu.Unlock()
		return false
	}
	g.fired = true
	g.reason = r
	close(g.done)
	g.mu.Unlock()

	if g.notify != nil {
		g.notify()
	}
	return true
}

// Fired reports whether the latch is set and which trigger set it.
func (g *Gate) Fired() (Reason, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.reason, g.fired
}

// Done is closed when the latch fires.
func (g *Gate) Done() <-chan struct{} { return g.done }

// Wait blocks until the latch fires or ctx is done.
func (g *Gate) Wait(ctx context.Context) error {
	select {
	case <-g.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
