package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bamsammich/preroll/internal/event"
	"github.com/bamsammich/preroll/internal/ui"
)

// logSetup holds the process logger and, with --log, the JSON file sink
// that session events are teed into.
type logSetup struct {
	logger *slog.Logger
	events *slog.Logger // nil without --log
	file   io.Closer
}

func setupLogging(opts options) (*logSetup, error) {
	return newLogSetup(os.Stderr, opts)
}

func newLogSetup(stderr io.Writer, opts options) (*logSetup, error) {
	// The sequence is the progress display, so stderr logging starts at warn.
	logLevel := slog.LevelWarn
	switch {
	case opts.verbose:
		logLevel = slog.LevelDebug
	case opts.quiet:
		logLevel = slog.LevelError
	}
	textHandler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel})

	ls := &logSetup{}
	var logHandler slog.Handler = textHandler
	if opts.logFile != "" {
		lf, err := os.Create(opts.logFile)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		ls.file = lf
		jsonHandler := slog.NewJSONHandler(lf, &slog.HandlerOptions{Level: slog.LevelDebug})
		logHandler = ui.NewMultiHandler(textHandler, jsonHandler)
		ls.events = slog.New(jsonHandler)
	}
	ls.logger = slog.New(logHandler)
	slog.SetDefault(ls.logger)
	return ls, nil
}

func (ls *logSetup) Close() error {
	if ls.file == nil {
		return nil
	}
	return ls.file.Close()
}

// logEvent writes one structured preroll.event record for a session event.
// It is a no-op without --log.
func (ls *logSetup) logEvent(ev event.Event) {
	if ls.events == nil {
		return
	}
	attrs := []slog.Attr{
		slog.String("type", ev.Type.String()),
		slog.String("session", ev.Session),
		slog.Duration("elapsed", ev.Elapsed),
	}
	if ev.Tier != "" {
		attrs = append(attrs, slog.String("tier", ev.Tier))
	}
	if ev.Width > 0 {
		attrs = append(attrs, slog.Int("width", ev.Width))
	}
	if ev.Reason != "" {
		attrs = append(attrs, slog.String("reason", ev.Reason))
	}
	if ev.Error != nil {
		attrs = append(attrs, slog.String("error", ev.Error.Error()))
	}
	ls.events.LogAttrs(context.Background(), slog.LevelInfo, "preroll.event", attrs...)
}
