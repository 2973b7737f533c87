package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/bamsammich/preroll/internal/stats"
)

var rateUnits = [...]string{"B/s", "KB/s", "MB/s", "GB/s"}

// FormatRate formats a bytes-per-second rate as a human-readable string.
func FormatRate(bytesPerSec float64) string {
	if bytesPerSec <= 0 {
		return "0 B/s"
	}
	val := bytesPerSec
	for _, u := range rateUnits {
		if val >= 1024 {
			val /= 1024
			continue
		}
		switch {
		case val < 10:
			return fmt.Sprintf("%.2f %s", val, u)
		case val < 100:
			return fmt.Sprintf("%.1f %s", val, u)
		default:
			return fmt.Sprintf("%.0f %s", val, u)
		}
	}
	return fmt.Sprintf("%.1f TB/s", val)
}

// FormatETA formats a remaining duration, or "--" when unknown.
func FormatETA(d time.Duration) string {
	if d <= 0 {
		return "--"
	}
	return FormatDuration(d)
}

// FormatPercent formats a fraction in [0,1] as a right-aligned percentage.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%3.0f%%", clamp01(f)*100)
}

// ProgressBar renders a progress bar of the given width using ▪/□ characters.
func ProgressBar(frac float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := min(int(clamp01(frac)*float64(width)), width)
	return strings.Repeat("▪", filled) + strings.Repeat("□", width-filled)
}

// FormatBytes wraps stats.FormatBytes for UI use.
func FormatBytes(b int64) string {
	return stats.FormatBytes(b)
}

// FormatDuration formats elapsed time concisely. Durations under a minute
// keep one decimal so the 2.5s sequences read correctly.
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		d = d.Round(100 * time.Millisecond)
		return fmt.Sprintf("%gs", d.Seconds())
	}
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm %02ds", h, m, s)
	}
	return fmt.Sprintf("%dm %02ds", m, s)
}

func clamp01(f float64) float64 {
	return max(0, min(f, 1))
}
