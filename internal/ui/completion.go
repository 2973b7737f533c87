package ui

import (
	"fmt"

	"github.com/bamsammich/preroll/internal/splash"
	"github.com/bamsammich/preroll/internal/stats"
)

// CompletionSummary builds the final summary line from the last view and a
// stats snapshot. It never includes the completion reason.
// Format: ready ✓  tier large  time 4.2s  media 1.5 MiB  switches 1
func CompletionSummary(view splash.View, snap stats.Snapshot) string {
	icon := "✓"
	if !view.Done {
		icon = "–"
	}

	base := fmt.Sprintf("ready %s  tier %s  time %s",
		icon, view.Tier, FormatDuration(snap.Elapsed))

	if snap.MediaBytes > 0 {
		base += "  media " + FormatBytes(snap.MediaBytes)
	}
	if snap.TierSwitches > 0 {
		base += fmt.Sprintf("  switches %d", snap.TierSwitches)
	}
	return base
}
