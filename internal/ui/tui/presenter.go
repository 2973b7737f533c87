package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bamsammich/preroll/internal/config"
	"github.com/bamsammich/preroll/internal/event"
	"github.com/bamsammich/preroll/internal/platform"
	"github.com/bamsammich/preroll/internal/splash"
	"github.com/bamsammich/preroll/internal/stats"
	"github.com/bamsammich/preroll/internal/ui"
)

// DefaultTitle is the wordmark shown when none is configured.
const DefaultTitle = "preroll"

// Config configures the TUI presenter.
type Config struct {
	Stats     *stats.Collector
	Theme     config.ThemeConfig
	Title     string
	CellWidth int
}

// Presenter wraps a Bubble Tea program and implements ui.Presenter.
type Presenter struct {
	cfg  Config
	feed *feedView
	ctrl *splash.Controller
}

// NewPresenter creates a new TUI presenter.
func NewPresenter(cfg Config) *Presenter {
	ApplyTheme(cfg.Theme)
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	return &Presenter{cfg: cfg, feed: &feedView{}}
}

// HandleEvent records session milestones for the feed.
func (p *Presenter) HandleEvent(ev event.Event) {
	p.feed.handleEvent(ev)
}

// Run starts the sequence and the Bubble Tea program, and blocks until the
// sequence completes, the user quits or ctx is cancelled. The controller is
// only touched from this goroutine and the program's update loop.
func (p *Presenter) Run(ctx context.Context, s ui.Session) error {
	p.ctrl = s.Controller
	s.Controller.Start(s.Width())

	measure := func(cols int) int {
		if w := s.Width(); w > 0 {
			return w
		}
		return platform.ColumnsToPixels(cols, p.cfg.CellWidth)
	}
	model := NewModel(s.Controller, s.Loop.Tasks(), p.cfg.Stats, measure, p.feed, p.cfg.Title)

	prog := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithoutSignalHandler(),
	)
	_, err := prog.Run()
	if ctx.Err() != nil {
		s.Controller.Close()
		return ctx.Err()
	}
	return err
}

// Summary returns the final completion summary line.
func (p *Presenter) Summary() string {
	if p.ctrl == nil {
		return ""
	}
	return ui.CompletionSummary(p.ctrl.View(), p.cfg.Stats.Snapshot())
}
