package ui

import "github.com/bamsammich/preroll/internal/event"

// Event is re-exported for presenters.
type Event = event.Event

// Re-export event types for convenience.
const (
	SessionStarted    = event.SessionStarted
	TierSelected      = event.TierSelected
	StrategyCancelled = event.StrategyCancelled
	TimerExpired      = event.TimerExpired
	ProgressComplete  = event.ProgressComplete
	MediaStarted      = event.MediaStarted
	MediaReady        = event.MediaReady
	MediaEnded        = event.MediaEnded
	MediaFailed       = event.MediaFailed
	CapExpired        = event.CapExpired
	Completed         = event.Completed
	SessionClosed     = event.SessionClosed
)
