package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/bamsammich/preroll/internal/event"
	"github.com/bamsammich/preroll/internal/ui"
)

const feedLimit = 4

type feedEntry struct {
	at   time.Duration // offset from session start
	text string
}

// feedView keeps the last few session milestones shown under the splash.
// Media failures never appear here.
type feedView struct {
	start   time.Time
	entries []feedEntry
}

func (f *feedView) handleEvent(ev event.Event) {
	if f.start.IsZero() {
		f.start = ev.Timestamp
	}
	at := ev.Timestamp.Sub(f.start)
	switch ev.Type {
	case event.TierSelected:
		f.add(at, fmt.Sprintf("tier %s · %dpx", ev.Tier, ev.Width))
	case event.StrategyCancelled:
		f.add(at, fmt.Sprintf("tier %s stopped", ev.Tier))
	case event.MediaStarted:
		f.add(at, "loading clip")
	case event.MediaReady:
		f.add(at, "clip ready")
	}
}

func (f *feedView) add(at time.Duration, text string) {
	f.entries = append(f.entries, feedEntry{at: at, text: text})
	if len(f.entries) > feedLimit {
		f.entries = f.entries[len(f.entries)-feedLimit:]
	}
}

func (f *feedView) view() string {
	lines := make([]string, 0, len(f.entries))
	for _, e := range f.entries {
		lines = append(lines, styleFeed.Render(fmt.Sprintf("+%-5s %s", ui.FormatDuration(e.at), e.text)))
	}
	return strings.Join(lines, "\n")
}
