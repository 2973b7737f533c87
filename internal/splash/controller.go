// Package splash drives the startup loading sequence. A Controller picks a
// strategy from the viewport width, restarts it whenever the width crosses
// into another tier, and reports completion to the host exactly once.
//
// Controller methods and every callback it schedules run on the scheduler
// thread; the Controller itself does no locking.
package splash

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bamsammich/preroll/internal/event"
	"github.com/bamsammich/preroll/internal/media"
	"github.com/bamsammich/preroll/internal/sched"
	"github.com/bamsammich/preroll/internal/stats"
)

// Timings holds the durations that shape each strategy.
type Timings struct {
	CompactDelay    time.Duration
	MediumDelay     time.Duration
	MediaCap        time.Duration
	CompactProgress time.Duration
	MediumProgress  time.Duration
	Frame           time.Duration
}

// DefaultTimings returns the standard sequence durations.
func DefaultTimings() Timings {
	return Timings{
		CompactDelay:    2000 * time.Millisecond,
		MediumDelay:     2500 * time.Millisecond,
		MediaCap:        8000 * time.Millisecond,
		CompactProgress: 1800 * time.Millisecond,
		MediumProgress:  2200 * time.Millisecond,
		Frame:           16 * time.Millisecond,
	}
}

// withDefaults fills zero fields from DefaultTimings.
func (t Timings) withDefaults() Timings {
	d := DefaultTimings()
	if t.CompactDelay <= 0 {
		t.CompactDelay = d.CompactDelay
	}
	if t.MediumDelay <= 0 {
		t.MediumDelay = d.MediumDelay
	}
	if t.MediaCap <= 0 {
		t.MediaCap = d.MediaCap
	}
	if t.CompactProgress <= 0 {
		t.CompactProgress = d.CompactProgress
	}
	if t.MediumProgress <= 0 {
		t.MediumProgress = d.MediumProgress
	}
	if t.Frame <= 0 {
		t.Frame = d.Frame
	}
	return t
}

// Config configures a Controller.
type Config struct {
	Scheduler sched.Scheduler
	Player    media.Player // plays the intro clip for the Large tier
	Timings   Timings      // zero fields use DefaultTimings
	Stats     *stats.Collector
	Logger    *slog.Logger
	Session   string            // session id; generated when empty
	OnEvent   func(event.Event) // called on the scheduler thread
}

// View is what the presentation layer reads. Progress is only meaningful for
// Compact and Medium, Ready only for Large.
type View struct {
	Tier     Tier
	Progress float64
	Ready    bool
	Done     bool
}

// Controller runs one loading session.
type Controller struct {
	cfg     Config
	sched   sched.Scheduler
	timings Timings
	gate    *Gate
	log     *slog.Logger

	active   strategy
	view     View
	runStart time.Time
	started  bool
	closed   bool
}

// New creates a Controller that calls onComplete once when the sequence ends.
func New(cfg Config, onComplete func()) *Controller {
	if cfg.Session == "" {
		cfg.Session = uuid.NewString()
	}
	if cfg.Stats == nil {
		cfg.Stats = stats.NewCollector()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		cfg:     cfg,
		sched:   cfg.Scheduler,
		timings: cfg.Timings.withDefaults(),
		gate:    NewGate(onComplete),
		log:     logger.With("session", cfg.Session),
	}
}

// Session returns the session id.
func (c *Controller) Session() string { return c.cfg.Session }

// Start classifies the viewport width available at activation and starts
// the matching strategy. Later calls are ignored.
func (c *Controller) Start(width int) {
	if c.started || c.closed {
		return
	}
	c.started = true
	c.emit(event.Event{Type: event.SessionStarted, Width: width})
	c.activate(Classify(width), width)
}

// Resize re-classifies the viewport. When the tier changes, the active
// strategy is torn down and the new tier's strategy starts from scratch.
func (c *Controller) Resize(width int) {
	if !c.started || c.closed || c.view.Done {
		return
	}
	tier := Classify(width)
	if tier == c.view.Tier {
		return
	}
	c.log.Debug("viewport tier changed", "from", c.view.Tier, "to", tier, "width", width)
	c.cfg.Stats.AddTierSwitches(1)
	c.teardown()
	c.activate(tier, width)
}

// Close ends the session without completing it, releasing every timer and
// listener. Safe to call more than once.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.teardown()
	c.emit(event.Event{Type: event.SessionClosed})
}

// View returns the current presentation state.
func (c *Controller) View() View { return c.view }

// Done is closed when the sequence completes.
func (c *Controller) Done() <-chan struct{} { return c.gate.Done() }

// Reason reports what completed the sequence, if it has completed.
func (c *Controller) Reason() (Reason, bool) { return c.gate.Fired() }

func (c *Controller) activate(tier Tier, width int) {
	c.view = View{Tier: tier}
	c.runStart = c.sched.Now()
	c.cfg.Stats.AddStrategyRuns(1)
	c.emit(event.Event{Type: event.TierSelected, Width: width})
	c.log.Debug("strategy started", "tier", tier, "width", width)

	var s strategy
	switch tier {
	case Compact:
		s = &timedStrategy{c: c, delay: c.timings.CompactDelay, progress: c.timings.CompactProgress}
	case Medium:
		s = &timedStrategy{c: c, delay: c.timings.MediumDelay, progress: c.timings.MediumProgress}
	default:
		s = &mediaStrategy{c: c, player: c.cfg.Player, cap: c.timings.MediaCap}
	}
	c.active = s
	s.start()
}

func (c *Controller) teardown() {
	if c.active == nil {
		return
	}
	s := c.active
	c.active = nil
	s.stop()
	if !c.view.Done {
		c.emit(event.Event{Type: event.StrategyCancelled})
	}
}

// complete is the only path into the gate.
func (c *Controller) complete(r Reason) {
	if !c.gate.Signal(r) {
		return
	}
	c.view.Done = true
	c.log.Info("loading sequence complete", "tier", c.view.Tier, "reason", r,
		"elapsed", c.sched.Now().Sub(c.runStart))
	c.emit(event.Event{Type: event.Completed, Reason: r.String()})
	c.teardown()
}

func (c *Controller) setProgress(f float64) {
	c.view.Progress = f
	c.cfg.Stats.AddProgressFrames(1)
	if f >= 1 {
		c.emit(event.Event{Type: event.ProgressComplete})
	}
}

func (c *Controller) emit(ev event.Event) {
	if c.cfg.OnEvent == nil {
		return
	}
	ev.Timestamp = c.sched.Now()
	ev.Session = c.cfg.Session
	if c.view.Tier != 0 {
		ev.Tier = c.view.Tier.String()
	}
	if !c.runStart.IsZero() {
		ev.Elapsed = ev.Timestamp.Sub(c.runStart)
	}
	c.cfg.OnEvent(ev)
}
