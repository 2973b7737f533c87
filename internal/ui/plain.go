package ui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bamsammich/preroll/internal/splash"
	"github.com/bamsammich/preroll/internal/stats"
)

const plainProgressInterval = time.Second

// plainPresenter writes one line per tier change to stdout and, unless
// disabled, periodic progress to stderr. Used when stderr is not a TTY.
type plainPresenter struct {
	w        io.Writer
	errW     io.Writer
	stats    *stats.Collector
	progress bool

	ctrl *splash.Controller
}

func (p *plainPresenter) HandleEvent(ev Event) {
	switch ev.Type {
	case TierSelected:
		fmt.Fprintf(p.w, "tier %s  %dpx\n", ev.Tier, ev.Width)
	case StrategyCancelled:
		fmt.Fprintf(p.w, "tier %s  cancelled\n", ev.Tier)
	case MediaReady:
		fmt.Fprintln(p.w, "media ready")
	case MediaFailed:
		// not shown; a failed clip completes like a finished one
	}
}

func (p *plainPresenter) Run(ctx context.Context, s Session) error {
	p.ctrl = s.Controller
	if !p.progress {
		return drive(ctx, s, 0, nil)
	}
	return drive(ctx, s, plainProgressInterval, p.printProgress)
}

func (p *plainPresenter) printProgress() {
	p.stats.Tick()
	view := p.ctrl.View()

	if view.Tier != splash.Large {
		fmt.Fprintf(p.errW, "progress: %s %s\n", view.Tier, FormatPercent(view.Progress))
		return
	}

	snap := p.stats.Snapshot()
	state := "buffering"
	if view.Ready {
		state = "playing"
	}
	if snap.MediaTotal > 0 {
		frac := float64(snap.MediaBytes) / float64(snap.MediaTotal)
		fmt.Fprintf(p.errW, "progress: large %s %s %s/%s %s eta %s\n",
			state,
			FormatPercent(frac),
			FormatBytes(snap.MediaBytes), FormatBytes(snap.MediaTotal),
			FormatRate(p.stats.RollingSpeed(5)),
			FormatETA(p.stats.ETA()),
		)
		return
	}
	fmt.Fprintf(p.errW, "progress: large %s %s %s\n",
		state, FormatBytes(snap.MediaBytes), FormatRate(p.stats.RollingSpeed(5)))
}

func (p *plainPresenter) Summary() string {
	if p.ctrl == nil {
		return ""
	}
	return CompletionSummary(p.ctrl.View(), p.stats.Snapshot())
}
