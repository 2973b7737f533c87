package ui

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bamsammich/preroll/internal/media"
	"github.com/bamsammich/preroll/internal/sched"
	"github.com/bamsammich/preroll/internal/splash"
	"github.com/bamsammich/preroll/internal/stats"
)

func fastTimings() splash.Timings {
	return splash.Timings{
		CompactDelay:    120 * time.Millisecond,
		MediumDelay:     150 * time.Millisecond,
		MediaCap:        2 * time.Second,
		CompactProgress: 100 * time.Millisecond,
		MediumProgress:  120 * time.Millisecond,
		Frame:           5 * time.Millisecond,
	}
}

type testSession struct {
	Session
	width  *atomic.Int64
	resize chan struct{}
	fake   *media.Fake
	stats  *stats.Collector
}

func newTestSession(t *testing.T, p Presenter, collector *stats.Collector, width int) *testSession {
	t.Helper()
	loop := sched.NewLoop(nil)
	t.Cleanup(loop.Close)

	ts := &testSession{
		width:  &atomic.Int64{},
		resize: make(chan struct{}, 1),
		fake:   &media.Fake{},
		stats:  collector,
	}
	ts.width.Store(int64(width))
	ts.Session = Session{
		Controller: splash.New(splash.Config{
			Scheduler: loop,
			Player:    ts.fake,
			Timings:   fastTimings(),
			Stats:     collector,
			OnEvent:   p.HandleEvent,
		}, nil),
		Loop:   loop,
		Width:  func() int { return int(ts.width.Load()) },
		Resize: ts.resize,
	}
	return ts
}

// runAsync starts p.Run and returns a channel carrying its result.
func runAsync(ctx context.Context, p Presenter, s Session) <-chan error {
	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(ctx, s) }()
	return errCh
}

func waitRun(t *testing.T, errCh <-chan error) error {
	t.Helper()
	select {
	case err := <-errCh:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("presenter did not finish")
		return nil
	}
}

func TestDriveCompletesCompact(t *testing.T) {
	p := &quietPresenter{}
	ts := newTestSession(t, p, stats.NewCollector(), 400)

	require.NoError(t, p.Run(context.Background(), ts.Session))

	view := ts.Controller.View()
	assert.True(t, view.Done)
	assert.Equal(t, splash.Compact, view.Tier)
	reason, ok := ts.Controller.Reason()
	require.True(t, ok)
	assert.Equal(t, splash.ReasonTimer, reason)
	assert.Empty(t, p.Summary())
}

func TestDriveForwardsResize(t *testing.T) {
	p := &quietPresenter{}
	collector := stats.NewCollector()
	ts := newTestSession(t, p, collector, 400)

	// Queued before Run, so it is handled right after Start.
	ts.width.Store(900)
	ts.resize <- struct{}{}

	require.NoError(t, p.Run(context.Background(), ts.Session))

	assert.Equal(t, splash.Medium, ts.Controller.View().Tier)
	assert.Equal(t, int64(1), collector.Snapshot().TierSwitches)
}

func TestDriveLargeEndsOnMedia(t *testing.T) {
	p := &quietPresenter{}
	ts := newTestSession(t, p, stats.NewCollector(), 1280)

	errCh := runAsync(context.Background(), p, ts.Session)
	require.Eventually(t, ts.fake.Playing, 2*time.Second, 5*time.Millisecond)

	assert.True(t, ts.fake.Emit(media.CanPlayThrough, nil))
	assert.True(t, ts.fake.Emit(media.Ended, nil))
	require.NoError(t, waitRun(t, errCh))

	reason, ok := ts.Controller.Reason()
	require.True(t, ok)
	assert.Equal(t, splash.ReasonEnded, reason)
	assert.True(t, ts.Controller.View().Ready)
	assert.False(t, ts.fake.Playing())
}

func TestDriveCancelClosesSession(t *testing.T) {
	p := &quietPresenter{}
	ts := newTestSession(t, p, stats.NewCollector(), 1280)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := runAsync(ctx, p, ts.Session)
	require.Eventually(t, ts.fake.Playing, 2*time.Second, 5*time.Millisecond)

	cancel()
	err := waitRun(t, errCh)
	require.ErrorIs(t, err, context.Canceled)

	_, fired := ts.Controller.Reason()
	assert.False(t, fired)
	assert.False(t, ts.fake.Playing())
	assert.Equal(t, 1, ts.fake.Stops())
}

func TestNewPresenterSelection(t *testing.T) {
	collector := stats.NewCollector()

	assert.IsType(t, &quietPresenter{}, NewPresenter(Config{Quiet: true, IsTTY: true, Stats: collector}))
	assert.IsType(t, &plainPresenter{}, NewPresenter(Config{IsTTY: false, Stats: collector}))
	assert.IsType(t, &plainPresenter{}, NewPresenter(Config{IsTTY: true, NoProgress: true, Stats: collector}))
	assert.IsType(t, &hudPresenter{}, NewPresenter(Config{IsTTY: true, Stats: collector}))
}
