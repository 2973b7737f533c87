//go:build linux || darwin

package platform

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// Measure reads the terminal size of fd with TIOCGWINSZ, including the
// pixel fields most modern terminals fill in.
func Measure(fd uintptr) (Viewport, error) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ) //nolint:gosec // G115: fds fit in int
	if err != nil {
		return Viewport{}, fmt.Errorf("get window size: %w", err)
	}
	return Viewport{
		Cols:        int(ws.Col),
		Rows:        int(ws.Row),
		PixelWidth:  int(ws.Xpixel),
		PixelHeight: int(ws.Ypixel),
	}, nil
}

// NotifyResize delivers a value on the returned channel each time the
// terminal is resized, until ctx is cancelled.
func NotifyResize(ctx context.Context) <-chan struct{} {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, unix.SIGWINCH)

	out := make(chan struct{}, 1)
	go func() {
		defer signal.Stop(sigs)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sigs:
				select {
				case out <- struct{}{}:
				default: // a resize is already pending
				}
			}
		}
	}()
	return out
}
