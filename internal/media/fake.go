package media

import (
	"context"
	"sync"
)

// Fake is a scripted Player for tests. Events are delivered only when the
// test calls Emit.
type Fake struct {
	mu       sync.Mutex
	listener Listener
	plays    int
	stops    int

	// PlayErr, when set, is returned by Play.
	PlayErr error
}

func (f *Fake) Play(_ context.Context, l Listener) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.PlayErr != nil {
		return f.PlayErr
	}
	f.listener = l
	f.plays++
	return nil
}

func (f *Fake) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listener = nil
	f.stops++
}

// Emit delivers an event to the active listener. It reports false when
// nothing is playing.
func (f *Fake) Emit(t EventType, err error) bool {
	f.mu.Lock()
	l := f.listener
	f.mu.Unlock()
	if l == nil {
		return false
	}
	l(Event{Type: t, Err: err})
	return true
}

// Listener returns the active listener, or nil.
func (f *Fake) Listener() Listener {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listener
}

// Playing reports whether Play was called without a matching Stop.
func (f *Fake) Playing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listener != nil
}

// Plays returns how many times Play succeeded.
func (f *Fake) Plays() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.plays
}

// Stops returns how many times Stop was called.
func (f *Fake) Stops() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stops
}
