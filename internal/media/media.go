// Package media plays the intro clip used by the large-viewport loading
// strategy. Players report three kinds of events: the stream can play through
// without further buffering, playback reached the end, and playback failed.
package media

import (
	"context"
	"errors"
)

// EventType identifies a playback event.
type EventType int

const (
	CanPlayThrough EventType = iota + 1
	Ended
	Error
)

var eventNames = [...]string{
	CanPlayThrough: "canplaythrough",
	Ended:          "ended",
	Error:          "error",
}

func (t EventType) String() string {
	if t > 0 && int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event is a single playback event. Err is set for Error events.
type Event struct {
	Type EventType
	Err  error
}

// Listener receives playback events. Players call it from their own goroutine.
type Listener func(Event)

// Player plays one media stream at a time.
type Player interface {
	// Play starts playback in the background and reports events to l until
	// playback ends, fails, or Stop is called. A second Play replaces the
	// first.
	Play(ctx context.Context, l Listener) error
	// Stop halts playback. No events are reported once Stop returns.
	Stop()
}

// ErrNoSource is returned by Play when the player has nothing to play.
var ErrNoSource = errors.New("media: no source configured")
