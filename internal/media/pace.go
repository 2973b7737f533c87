package media

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// NewPacer creates a rate.Limiter that releases media bytes at the stream's
// playback bitrate. The burst is capped at 64 KiB so playback advances in
// small steps instead of finishing in one read.
func NewPacer(bytesPerSec int64) *rate.Limiter {
	burst := 64 << 10
	if bytesPerSec < int64(burst) {
		burst = int(bytesPerSec)
	}
	return rate.NewLimiter(rate.Limit(bytesPerSec), burst)
}

// pacedReader wraps an io.Reader and consumes it no faster than the limiter allows.
type pacedReader struct {
	r       io.Reader
	limiter *rate.Limiter
	ctx     context.Context
}

func newPacedReader(ctx context.Context, r io.Reader, limiter *rate.Limiter) *pacedReader {
	return &pacedReader{r: r, limiter: limiter, ctx: ctx}
}

func (pr *pacedReader) Read(p []byte) (int, error) {
	if b := pr.limiter.Burst(); len(p) > b {
		p = p[:b]
	}
	n, err := pr.r.Read(p)
	if n > 0 {
		if waitErr := pr.limiter.WaitN(pr.ctx, n); waitErr != nil {
			return n, waitErr
		}
	}
	return n, err
}
