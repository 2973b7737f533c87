package event

import "time"

// Type identifies the kind of event.
type Type int

const (
	SessionStarted Type = iota + 1
	TierSelected
	StrategyCancelled
	TimerExpired
	ProgressComplete
	MediaStarted
	MediaReady
	MediaEnded
	MediaFailed
	CapExpired
	Completed
	SessionClosed
)

var typeNames = [...]string{
	SessionStarted:    "SessionStarted",
	TierSelected:      "TierSelected",
	StrategyCancelled: "StrategyCancelled",
	TimerExpired:      "TimerExpired",
	ProgressComplete:  "ProgressComplete",
	MediaStarted:      "MediaStarted",
	MediaReady:        "MediaReady",
	MediaEnded:        "MediaEnded",
	MediaFailed:       "MediaFailed",
	CapExpired:        "CapExpired",
	Completed:         "Completed",
	SessionClosed:     "SessionClosed",
}

func (t Type) String() string {
	if t > 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown"
}

// Event represents a single transition of a loading session.
type Event struct {
	Type      Type
	Timestamp time.Time
	Session   string        // session id
	Tier      string        // active tier when the event was raised
	Width     int           // viewport width in pixels (TierSelected)
	Reason    string        // completion trigger (Completed)
	Elapsed   time.Duration // time since the active strategy started
	Error     error
}
