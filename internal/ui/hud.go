package ui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bamsammich/preroll/internal/splash"
	"github.com/bamsammich/preroll/internal/stats"
)

// ANSI escape sequences.
const (
	ansiDim   = "\033[2m"
	ansiBold  = "\033[1m"
	ansiReset = "\033[0m"
)

const (
	sparklineWidth   = 20
	progressBarWidth = 20
	hudRedrawEvery   = 50 * time.Millisecond
	statsTickEvery   = time.Second
)

// hudPresenter draws the sequence inline on a TTY: tier changes scroll
// above a one or two line HUD that redraws in place.
type hudPresenter struct {
	w     io.Writer
	stats *stats.Collector

	ctrl         *splash.Controller
	hudDrawn     bool
	hudLineCount int // lines written by the last draw
	lastTick     time.Time
}

func (p *hudPresenter) HandleEvent(ev Event) {
	switch ev.Type {
	case TierSelected:
		p.clearHUD()
		fmt.Fprintf(p.w, "%s%s%s  %s%dpx%s\n", ansiBold, ev.Tier, ansiReset, ansiDim, ev.Width, ansiReset)
	case StrategyCancelled:
		p.clearHUD()
		fmt.Fprintf(p.w, "%s↻  tier %s stopped%s\n", ansiDim, ev.Tier, ansiReset)
	case MediaReady:
		p.drawHUD()
	}
}

func (p *hudPresenter) Run(ctx context.Context, s Session) error {
	p.ctrl = s.Controller
	p.lastTick = time.Now()
	err := drive(ctx, s, hudRedrawEvery, p.redraw)
	p.clearHUD()
	return err
}

func (p *hudPresenter) redraw() {
	if now := time.Now(); now.Sub(p.lastTick) >= statsTickEvery {
		p.stats.Tick()
		p.lastTick = now
	}
	p.drawHUD()
}

func (p *hudPresenter) drawHUD() {
	if p.ctrl == nil {
		return
	}
	view := p.ctrl.View()
	p.clearHUD()

	lines := 0
	if view.Tier == splash.Large {
		snap := p.stats.Snapshot()
		spark := Sparkline(p.stats.SparklineData(sparklineWidth), sparklineWidth)
		fmt.Fprintf(p.w, "       %s   %s   %s / %s\n",
			spark, FormatRate(p.stats.RollingSpeed(5)),
			FormatBytes(snap.MediaBytes), FormatBytes(snap.MediaTotal))
		lines++

		state := "buffering"
		if view.Ready {
			state = "playing"
		}
		fmt.Fprintf(p.w, "       %s%s%s   eta %s\n", ansiDim, state, ansiReset, FormatETA(p.stats.ETA()))
		lines++
	} else {
		fmt.Fprintf(p.w, " %s  %s\n", FormatPercent(view.Progress), ProgressBar(view.Progress, progressBarWidth))
		lines++
	}

	p.hudDrawn = true
	p.hudLineCount = lines
}

func (p *hudPresenter) clearHUD() {
	if !p.hudDrawn {
		return
	}
	// Move cursor up N lines and clear to end of screen.
	fmt.Fprintf(p.w, "\033[%dA\033[J", p.hudLineCount)
	p.hudDrawn = false
}

func (p *hudPresenter) Summary() string {
	if p.ctrl == nil {
		return ""
	}
	return CompletionSummary(p.ctrl.View(), p.stats.Snapshot())
}
