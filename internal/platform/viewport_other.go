//go:build !linux && !darwin

package platform

import (
	"context"
	"fmt"

	"golang.org/x/term"
)

// Measure reads the terminal size of fd. Pixel sizes are not available on
// this platform.
func Measure(fd uintptr) (Viewport, error) {
	cols, rows, err := term.GetSize(int(fd))
	if err != nil {
		return Viewport{}, fmt.Errorf("get window size: %w", err)
	}
	return Viewport{Cols: cols, Rows: rows}, nil
}

// NotifyResize never fires on this platform; resizes are only observed
// through the full-screen presenter.
func NotifyResize(_ context.Context) <-chan struct{} {
	return nil
}
