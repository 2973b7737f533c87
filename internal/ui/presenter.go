package ui

import (
	"context"
	"io"
	"time"

	"github.com/bamsammich/preroll/internal/sched"
	"github.com/bamsammich/preroll/internal/splash"
	"github.com/bamsammich/preroll/internal/stats"
)

// Session is everything a presenter needs to drive one loading sequence.
type Session struct {
	Controller *splash.Controller
	Loop       *sched.Loop
	// Width reports the current viewport width in pixels.
	Width func() int
	// Resize fires when the viewport may have changed size. Nil disables
	// resize handling.
	Resize <-chan struct{}
}

// Presenter displays a loading sequence and owns its loop thread.
type Presenter interface {
	// HandleEvent observes controller events. It is called on the loop
	// thread and must not block.
	HandleEvent(ev Event)
	// Run starts the sequence and drains the loop until it completes or ctx
	// is cancelled. Blocks until done.
	Run(ctx context.Context, s Session) error
	// Summary returns the final summary line.
	Summary() string
}

// Config configures a Presenter.
type Config struct {
	Writer     io.Writer
	ErrWriter  io.Writer
	Stats      *stats.Collector
	IsTTY      bool
	Quiet      bool
	NoProgress bool
}

// NewPresenter creates the appropriate headless presenter based on
// configuration. The full-screen presenter lives in package tui.
//
//nolint:ireturn // factory function returns interface by design
func NewPresenter(cfg Config) Presenter {
	if cfg.Quiet {
		return &quietPresenter{}
	}
	if !cfg.IsTTY || cfg.NoProgress {
		return &plainPresenter{
			w:        cfg.Writer,
			errW:     cfg.ErrWriter,
			stats:    cfg.Stats,
			progress: !cfg.NoProgress,
		}
	}
	return &hudPresenter{
		w:     cfg.ErrWriter, // HUD renders to stderr (the TTY)
		stats: cfg.Stats,
	}
}

// drive runs the loop thread for a headless presenter: it starts the
// controller, executes queued loop tasks, forwards resizes and calls tick
// every interval until the sequence completes.
func drive(ctx context.Context, s Session, every time.Duration, tick func()) error {
	s.Controller.Start(s.Width())

	var tickC <-chan time.Time
	if every > 0 && tick != nil {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		tickC = ticker.C
	}

	for {
		select {
		case fn := <-s.Loop.Tasks():
			fn()
		case <-s.Resize:
			s.Controller.Resize(s.Width())
		case <-tickC:
			tick()
		case <-s.Controller.Done():
			return nil
		case <-ctx.Done():
			s.Controller.Close()
			return ctx.Err()
		}
	}
}
