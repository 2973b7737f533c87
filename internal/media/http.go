package media

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/klauspost/compress/zstd"
	"github.com/zeebo/blake3"

	"github.com/bamsammich/preroll/internal/stats"
)

// DefaultReadyBytes is how much of the stream must be buffered before
// CanPlayThrough fires.
const DefaultReadyBytes = 256 << 10

// Options configures an HTTPPlayer.
type Options struct {
	URL        string
	Bitrate    int64 // playback rate in bytes/sec; 0 plays as fast as it downloads
	ReadyBytes int64 // buffered bytes before CanPlayThrough; 0 uses DefaultReadyBytes
	Client     *http.Client
	Stats      *stats.Collector
	Logger     *slog.Logger
}

// HTTPPlayer streams media from a URL. Playback is simulated by consuming the
// body at the configured bitrate; the stream is never rendered.
type HTTPPlayer struct {
	opts Options

	mu      sync.Mutex
	current *playback
}

type playback struct {
	cancel  context.CancelFunc
	stopped atomic.Bool
	done    chan struct{}
}

// NewHTTPPlayer creates a player for opts.URL.
func NewHTTPPlayer(opts Options) *HTTPPlayer {
	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}
	if opts.ReadyBytes <= 0 {
		opts.ReadyBytes = DefaultReadyBytes
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &HTTPPlayer{opts: opts}
}

// Play starts fetching and playing the stream.
func (p *HTTPPlayer) Play(ctx context.Context, l Listener) error {
	if p.opts.URL == "" {
		return ErrNoSource
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.opts.URL, nil)
	if err != nil {
		return fmt.Errorf("media request: %w", err)
	}
	req.Header.Set("Accept-Encoding", "zstd, identity")

	p.Stop()

	ctx, cancel := context.WithCancel(ctx)
	pb := &playback{cancel: cancel, done: make(chan struct{})}
	req = req.WithContext(ctx)

	p.mu.Lock()
	p.current = pb
	p.mu.Unlock()

	go p.run(ctx, pb, req, l)
	return nil
}

// Stop cancels the current playback. It does not wait for the fetch
// goroutine to exit; use Wait for that.
func (p *HTTPPlayer) Stop() {
	p.mu.Lock()
	pb := p.current
	p.mu.Unlock()
	if pb == nil {
		return
	}
	pb.stopped.Store(true)
	pb.cancel()
}

// Wait blocks until the current playback goroutine has exited.
func (p *HTTPPlayer) Wait() {
	p.mu.Lock()
	pb := p.current
	p.mu.Unlock()
	if pb != nil {
		<-pb.done
	}
}

func (p *HTTPPlayer) run(ctx context.Context, pb *playback, req *http.Request, l Listener) {
	defer close(pb.done)
	defer pb.cancel()

	emit := func(ev Event) {
		if pb.stopped.Load() {
			return
		}
		l(ev)
	}
	fail := func(err error) {
		if ctx.Err() != nil {
			return // stopped, not failed
		}
		emit(Event{Type: Error, Err: err})
	}

	resp, err := p.opts.Client.Do(req)
	if err != nil {
		fail(fmt.Errorf("fetch %s: %w", p.opts.URL, err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fail(fmt.Errorf("fetch %s: unexpected status %s", p.opts.URL, resp.Status))
		return
	}

	var body io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "zstd" {
		dec, decErr := zstd.NewReader(resp.Body)
		if decErr != nil {
			fail(fmt.Errorf("zstd decoder: %w", decErr))
			return
		}
		defer dec.Close()
		body = dec
	} else if p.opts.Stats != nil && resp.ContentLength > 0 {
		p.opts.Stats.SetMediaTotal(resp.ContentLength)
	}
	if p.opts.Bitrate > 0 {
		body = newPacedReader(ctx, body, NewPacer(p.opts.Bitrate))
	}

	h := blake3.New()
	buf := make([]byte, 32*1024)
	var played int64
	ready := false

	for {
		n, readErr := body.Read(buf)
		if n > 0 {
			played += int64(n)
			_, _ = h.Write(buf[:n]) //nolint:errcheck // hash writes never fail
			if p.opts.Stats != nil {
				p.opts.Stats.AddMediaBytes(int64(n))
			}
			if !ready && played >= p.opts.ReadyBytes {
				ready = true
				emit(Event{Type: CanPlayThrough})
			}
		}
		if errors.Is(readErr, io.EOF) {
			if !ready {
				emit(Event{Type: CanPlayThrough})
			}
			p.opts.Logger.Debug("media playback finished",
				"url", p.opts.URL,
				"bytes", played,
				"blake3", hex.EncodeToString(h.Sum(nil)),
			)
			emit(Event{Type: Ended})
			return
		}
		if readErr != nil {
			fail(fmt.Errorf("read %s: %w", p.opts.URL, readErr))
			return
		}
	}
}
