package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bamsammich/preroll/internal/event"
	"github.com/bamsammich/preroll/internal/media"
	"github.com/bamsammich/preroll/internal/stats"
)

func TestPlainPresenterTierLines(t *testing.T) {
	var out bytes.Buffer
	p := &plainPresenter{w: &out, errW: &out}

	p.HandleEvent(Event{Type: event.TierSelected, Tier: "compact", Width: 400})
	p.HandleEvent(Event{Type: event.StrategyCancelled, Tier: "compact"})
	p.HandleEvent(Event{Type: event.TierSelected, Tier: "large", Width: 1280})
	p.HandleEvent(Event{Type: event.MediaReady, Tier: "large"})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "tier compact  400px", lines[0])
	assert.Equal(t, "tier compact  cancelled", lines[1])
	assert.Equal(t, "tier large  1280px", lines[2])
	assert.Equal(t, "media ready", lines[3])
}

func TestPlainPresenterHidesMediaFailure(t *testing.T) {
	var out bytes.Buffer
	collector := stats.NewCollector()
	p := &plainPresenter{w: &out, errW: &out, stats: collector}
	ts := newTestSession(t, p, collector, 1280)

	errCh := runAsync(context.Background(), p, ts.Session)
	require.Eventually(t, ts.fake.Playing, 2*time.Second, 5*time.Millisecond)
	assert.True(t, ts.fake.Emit(media.Error, assert.AnError))
	require.NoError(t, waitRun(t, errCh))

	assert.NotContains(t, out.String(), assert.AnError.Error())
	assert.NotContains(t, out.String(), "error")

	summary := p.Summary()
	assert.True(t, strings.HasPrefix(summary, "ready ✓  tier large"), summary)
	assert.NotContains(t, summary, "error")
}

func TestPlainPresenterRunCompact(t *testing.T) {
	var out, errOut bytes.Buffer
	collector := stats.NewCollector()
	p := &plainPresenter{w: &out, errW: &errOut, stats: collector, progress: true}
	ts := newTestSession(t, p, collector, 500)

	require.NoError(t, p.Run(context.Background(), ts.Session))

	assert.Equal(t, "tier compact  500px\n", out.String())
	// The sequence is shorter than one progress interval.
	assert.Empty(t, errOut.String())
	assert.Contains(t, p.Summary(), "tier compact")
}

func TestPlainPresenterProgressLines(t *testing.T) {
	var errOut bytes.Buffer
	collector := stats.NewCollector()
	p := &plainPresenter{w: &bytes.Buffer{}, errW: &errOut, stats: collector}
	ts := newTestSession(t, p, collector, 1280)
	p.ctrl = ts.Controller
	ts.Controller.Start(1280)

	collector.SetMediaTotal(4096)
	collector.AddMediaBytes(1024)
	p.printProgress()

	line := errOut.String()
	assert.Contains(t, line, "progress: large buffering")
	assert.Contains(t, line, " 25%")
	assert.Contains(t, line, "1.0 KiB/4.0 KiB")
}

func TestPlainPresenterSummaryBeforeRun(t *testing.T) {
	p := &plainPresenter{stats: stats.NewCollector()}
	assert.Empty(t, p.Summary())
}
