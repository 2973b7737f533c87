package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bamsammich/preroll/internal/stats"
	"github.com/bamsammich/preroll/internal/ui"
)

const (
	compactBarWidth = 20
	mediumBarWidth  = 40
	minSparkWidth   = 10
	maxSparkWidth   = 60
)

// renderBar draws a two-tone progress bar.
func renderBar(frac float64, width int) string {
	bar := []rune(ui.ProgressBar(frac, width))
	filled := strings.Count(string(bar), "▪")
	return styleProgressFilled.Render(string(bar[:filled])) +
		styleProgressEmpty.Render(string(bar[filled:]))
}

func renderCompact(title string, progress float64) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		styleTitle.Render(title),
		"",
		renderBar(progress, compactBarWidth)+" "+styleStatMuted.Render(ui.FormatPercent(progress)),
	)
}

func renderMedium(title string, progress float64) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		styleTitle.Render(spaced(title)),
		styleTagline.Render("getting things ready"),
		"",
		renderBar(progress, mediumBarWidth),
		styleStatMuted.Render(ui.FormatPercent(progress)),
	)
}

// renderMedia draws the Large tier: clip state, throughput and a sparkline
// of the last minute of media bytes.
func renderMedia(title string, width int, ready bool, spin string, snap stats.Snapshot, collector stats.Reader) string {
	state := spin + " " + styleStatMuted.Render("buffering")
	if ready {
		state = styleReady.Render("▶ playing")
	}

	speed := collector.RollingSpeed(5)
	sparkWidth := min(max(width-4, minSparkWidth), maxSparkWidth)
	spark := ui.Sparkline(collector.SparklineData(sparkWidth), sparkWidth)

	total := "?"
	if snap.MediaTotal > 0 {
		total = ui.FormatBytes(snap.MediaTotal)
	}
	statLine := fmt.Sprintf("%s   %s",
		styleStat.Render(fmt.Sprintf("%s / %s", ui.FormatBytes(snap.MediaBytes), total)),
		styleStatMuted.Render("eta "+ui.FormatETA(collector.ETA())),
	)

	return lipgloss.JoinVertical(lipgloss.Center,
		styleTitle.Render(spaced(title)),
		"",
		state,
		"",
		styleBigNumber.Render(ui.FormatRate(speed)),
		styleSparkline.Render(spark),
		statLine,
	)
}

// spaced letter-spaces a wordmark: "preroll" -> "p r e r o l l".
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}
