package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/bamsammich/preroll/internal/config"
	"github.com/bamsammich/preroll/internal/event"
	"github.com/bamsammich/preroll/internal/media"
	"github.com/bamsammich/preroll/internal/platform"
	"github.com/bamsammich/preroll/internal/sched"
	"github.com/bamsammich/preroll/internal/splash"
	"github.com/bamsammich/preroll/internal/stats"
	"github.com/bamsammich/preroll/internal/ui"
	"github.com/bamsammich/preroll/internal/ui/tui"
)

// fallbackColumns is assumed when stderr is not a terminal.
const fallbackColumns = 80

// playSequence runs one loading sequence to completion. It returns an
// exitError when the sequence was interrupted.
func playSequence(ctx context.Context, opts options, cfg config.Config, logs *logSetup) error {
	collector := stats.NewCollector()
	player, err := newPlayer(opts, collector, logs.logger)
	if err != nil {
		return &exitError{code: exitSetup, err: err}
	}

	session := uuid.NewString()
	loop := sched.NewLoop(nil)
	defer loop.Close()

	isTTY := ui.IsTTY(os.Stderr.Fd())
	var presenter ui.Presenter
	if opts.tui && isTTY && !opts.quiet {
		presenter = tui.NewPresenter(tui.Config{
			Stats:     collector,
			Theme:     cfg.Theme,
			Title:     opts.title,
			CellWidth: opts.cellWidth,
		})
	} else {
		if opts.tui && !isTTY {
			logs.logger.Warn("--tui requires a terminal, falling back to inline output")
		}
		presenter = ui.NewPresenter(ui.Config{
			Writer:     os.Stdout,
			ErrWriter:  os.Stderr,
			Stats:      collector,
			IsTTY:      isTTY,
			Quiet:      opts.quiet,
			NoProgress: opts.noProgress,
		})
	}

	ctrlCfg := splash.Config{
		Scheduler: loop,
		Timings:   timingsFrom(cfg.Timings),
		Stats:     collector,
		Logger:    logs.logger,
		Session:   session,
		OnEvent: func(ev event.Event) {
			logs.logEvent(ev)
			presenter.HandleEvent(ev)
		},
	}
	// A nil *HTTPPlayer must not become a non-nil interface.
	if player != nil {
		ctrlCfg.Player = player
	}
	ctrl := splash.New(ctrlCfg, func() {
		logs.logger.Debug("handing off to host", "session", session)
	})

	var resize <-chan struct{}
	if opts.width <= 0 {
		resize = platform.NotifyResize(ctx)
	}

	runErr := presenter.Run(ctx, ui.Session{
		Controller: ctrl,
		Loop:       loop,
		Width:      viewportWidth(opts.width, opts.cellWidth, logs.logger),
		Resize:     resize,
	})
	if player != nil {
		player.Wait()
	}

	if !opts.quiet {
		if summary := presenter.Summary(); summary != "" {
			fmt.Fprintln(os.Stderr, summary)
		}
	}

	if _, done := ctrl.Reason(); !done {
		if runErr != nil && !errors.Is(runErr, context.Canceled) {
			return &exitError{code: exitSetup, err: runErr}
		}
		return &exitError{code: exitInterrupted}
	}
	if runErr != nil {
		logs.logger.Warn("presenter", "error", runErr)
	}
	return nil
}

// newPlayer builds the HTTP intro clip player, or returns nil when no clip
// is configured; the wide layout then completes immediately.
func newPlayer(opts options, collector *stats.Collector, logger *slog.Logger) (*media.HTTPPlayer, error) {
	if opts.mediaURL == "" {
		return nil, nil //nolint:nilnil // no clip is not an error
	}
	mopts := media.Options{URL: opts.mediaURL, Stats: collector, Logger: logger}
	if opts.bitrate != "" {
		n, err := config.ParseSize(opts.bitrate)
		if err != nil {
			return nil, fmt.Errorf("invalid --bitrate: %w", err)
		}
		mopts.Bitrate = n
	}
	if opts.readyBytes != "" {
		n, err := config.ParseSize(opts.readyBytes)
		if err != nil {
			return nil, fmt.Errorf("invalid --ready-bytes: %w", err)
		}
		mopts.ReadyBytes = n
	}
	return media.NewHTTPPlayer(mopts), nil
}

// timingsFrom converts config overrides; unset fields fall back to the
// controller defaults.
func timingsFrom(tc config.TimingsConfig) splash.Timings {
	return splash.Timings{
		CompactDelay:    config.Millis(tc.Compact),
		MediumDelay:     config.Millis(tc.Medium),
		MediaCap:        config.Millis(tc.MediaCap),
		CompactProgress: config.Millis(tc.CompactProgress),
		MediumProgress:  config.Millis(tc.MediumProgress),
		Frame:           config.Millis(tc.Frame),
	}
}

// viewportWidth returns the width source for the session: a fixed --width,
// or the terminal on stderr measured on every call.
func viewportWidth(fixed, cellWidth int, logger *slog.Logger) func() int {
	if fixed > 0 {
		return func() int { return fixed }
	}
	return func() int {
		w, err := platform.ViewportWidth(os.Stderr.Fd(), cellWidth)
		if err != nil || w <= 0 {
			logger.Debug("viewport not measurable, assuming default width", "error", err)
			return platform.ColumnsToPixels(fallbackColumns, cellWidth)
		}
		return w
	}
}
