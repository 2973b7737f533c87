package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bamsammich/preroll/internal/config"
	"github.com/bamsammich/preroll/internal/event"
	"github.com/bamsammich/preroll/internal/media"
	"github.com/bamsammich/preroll/internal/splash"
	"github.com/bamsammich/preroll/internal/stats"
)

func ptr[T any](v T) *T { return &v }

func newFlagCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().BoolVar(&opts.tui, "tui", false, "")
	cmd.Flags().StringVar(&opts.mediaURL, "url", "", "")
	cmd.Flags().IntVar(&opts.cellWidth, "cell-width", 0, "")
	cmd.Flags().StringVar(&opts.bitrate, "bitrate", "", "")
	cmd.Flags().StringVar(&opts.readyBytes, "ready-bytes", "", "")
	return cmd
}

func TestApplyConfigDefaults(t *testing.T) {
	var opts options
	cmd := newFlagCmd(&opts)
	require.NoError(t, cmd.Flags().Parse([]string{"--url", "http://cli/clip"}))

	applyConfigDefaults(cmd, config.DefaultsConfig{
		TUI:        ptr(true),
		MediaURL:   ptr("http://config/clip"),
		CellWidth:  ptr(10),
		Bitrate:    ptr("1M/s"),
		ReadyBytes: ptr("64K"),
	}, &opts)

	assert.True(t, opts.tui)
	assert.Equal(t, "http://cli/clip", opts.mediaURL, "explicit flag wins")
	assert.Equal(t, 10, opts.cellWidth)
	assert.Equal(t, "1M/s", opts.bitrate)
	assert.Equal(t, "64K", opts.readyBytes)
}

func TestApplyConfigDefaultsEmpty(t *testing.T) {
	var opts options
	cmd := newFlagCmd(&opts)
	require.NoError(t, cmd.Flags().Parse(nil))

	applyConfigDefaults(cmd, config.DefaultsConfig{}, &opts)
	assert.Equal(t, options{}, opts)
}

func TestTimingsFrom(t *testing.T) {
	got := timingsFrom(config.TimingsConfig{
		Compact:  ptr(1000),
		MediaCap: ptr(5000),
	})
	assert.Equal(t, splash.Timings{
		CompactDelay: time.Second,
		MediaCap:     5 * time.Second,
	}, got)
}

func TestNewPlayer(t *testing.T) {
	collector := stats.NewCollector()

	p, err := newPlayer(options{}, collector, nil)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = newPlayer(options{mediaURL: "http://example.invalid/clip", bitrate: "512K", readyBytes: "1M"}, collector, nil)
	require.NoError(t, err)
	require.NotNil(t, p)
	var _ media.Player = p

	_, err = newPlayer(options{mediaURL: "http://x", bitrate: "fast"}, collector, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--bitrate")

	_, err = newPlayer(options{mediaURL: "http://x", readyBytes: "-1"}, collector, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--ready-bytes")
}

func TestViewportWidthFixed(t *testing.T) {
	w := viewportWidth(1280, 8, nil)
	assert.Equal(t, 1280, w())
}

func TestRunHostExitCode(t *testing.T) {
	require.NoError(t, runHost(context.Background(), []string{"sh", "-c", "exit 0"}))

	err := runHost(context.Background(), []string{"sh", "-c", "exit 3"})
	var exitErr *exitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.code)
	assert.NoError(t, exitErr.err)
}

func TestRunHostNotFound(t *testing.T) {
	err := runHost(context.Background(), []string{filepath.Join(t.TempDir(), "missing")})
	var exitErr *exitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, exitNotFound, exitErr.code)
	assert.Error(t, exitErr.err)
}

func TestExitErrorUnwrap(t *testing.T) {
	base := errors.New("boom")
	err := &exitError{code: 2, err: base}
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "exit code 2: boom", err.Error())
	assert.Equal(t, "exit code 130", (&exitError{code: exitInterrupted}).Error())
}

func TestLogEventTee(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "preroll.log")
	var stderr bytes.Buffer
	ls, err := newLogSetup(&stderr, options{logFile: logPath})
	require.NoError(t, err)

	ls.logEvent(event.Event{
		Type:    event.Completed,
		Session: "abc",
		Tier:    "large",
		Reason:  "error",
		Elapsed: 3 * time.Second,
	})
	ls.logger.Debug("debug detail")
	require.NoError(t, ls.Close())

	f, err := os.Open(logPath)
	require.NoError(t, err)
	defer f.Close()

	var records []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		records = append(records, rec)
	}
	require.Len(t, records, 2)
	assert.Equal(t, "preroll.event", records[0]["msg"])
	assert.Equal(t, "Completed", records[0]["type"])
	assert.Equal(t, "large", records[0]["tier"])
	assert.Equal(t, "abc", records[0]["session"])
	assert.Equal(t, "debug detail", records[1]["msg"])

	// Events never reach stderr; debug is below the default level.
	assert.Empty(t, stderr.String())
}

func TestLogEventWithoutFile(t *testing.T) {
	var stderr bytes.Buffer
	ls, err := newLogSetup(&stderr, options{})
	require.NoError(t, err)
	ls.logEvent(event.Event{Type: event.TierSelected})
	ls.logger.Warn("visible")
	require.NoError(t, ls.Close())

	assert.NotContains(t, stderr.String(), "preroll.event")
	assert.Contains(t, stderr.String(), "visible")
}

func TestLogLevels(t *testing.T) {
	var stderr bytes.Buffer
	ls, err := newLogSetup(&stderr, options{quiet: true})
	require.NoError(t, err)
	ls.logger.Warn("hidden")
	ls.logger.Error("shown")
	assert.NotContains(t, stderr.String(), "hidden")
	assert.Contains(t, stderr.String(), "shown")

	stderr.Reset()
	ls, err = newLogSetup(&stderr, options{verbose: true})
	require.NoError(t, err)
	ls.logger.Debug("detail")
	assert.Contains(t, stderr.String(), "detail")
}
