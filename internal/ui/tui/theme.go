package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bamsammich/preroll/internal/config"
)

// Catppuccin Mocha palette, mutable so config can override.
var (
	ColorGreen  = lipgloss.Color("#a6e3a1")
	ColorBlue   = lipgloss.Color("#89b4fa")
	ColorYellow = lipgloss.Color("#f9e2af")
	ColorRed    = lipgloss.Color("#f38ba8")
	ColorTeal   = lipgloss.Color("#94e2d5")
	ColorMauve  = lipgloss.Color("#cba6f7")
	ColorMuted  = lipgloss.Color("#5a6278")
	ColorDim    = lipgloss.Color("#3a4055")
	ColorBright = lipgloss.Color("#cdd6f4")
)

// Pre-built styles, rebuilt by rebuildStyles() after color changes.
var (
	styleTitle          lipgloss.Style
	styleTagline        lipgloss.Style
	styleFeed           lipgloss.Style
	styleBigNumber      lipgloss.Style
	styleSparkline      lipgloss.Style
	styleStat           lipgloss.Style
	styleStatMuted      lipgloss.Style
	styleSpinner        lipgloss.Style
	styleReady          lipgloss.Style
	styleProgressFilled lipgloss.Style
	styleProgressEmpty  lipgloss.Style
	styleKeybindKey     lipgloss.Style
	styleKeybindLabel   lipgloss.Style
)

func init() {
	rebuildStyles()
}

// rebuildStyles reconstructs all lipgloss styles from the current color vars.
func rebuildStyles() {
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(ColorMauve)
	styleTagline = lipgloss.NewStyle().Foreground(ColorBright)
	styleFeed = lipgloss.NewStyle().Foreground(ColorDim)
	styleBigNumber = lipgloss.NewStyle().Bold(true).Foreground(ColorGreen)
	styleSparkline = lipgloss.NewStyle().Foreground(ColorBlue)
	styleStat = lipgloss.NewStyle().Foreground(ColorTeal)
	styleStatMuted = lipgloss.NewStyle().Foreground(ColorMuted)
	styleSpinner = lipgloss.NewStyle().Foreground(ColorYellow)
	styleReady = lipgloss.NewStyle().Foreground(ColorGreen)
	styleProgressFilled = lipgloss.NewStyle().Foreground(ColorGreen)
	styleProgressEmpty = lipgloss.NewStyle().Foreground(ColorDim)
	styleKeybindKey = lipgloss.NewStyle().Foreground(ColorMauve).Bold(true)
	styleKeybindLabel = lipgloss.NewStyle().Foreground(ColorMuted)
}

// ApplyTheme overrides colors from a config ThemeConfig and rebuilds all styles.
func ApplyTheme(tc config.ThemeConfig) {
	for _, o := range []struct {
		dst *lipgloss.Color
		src *string
	}{
		{&ColorGreen, tc.Green},
		{&ColorBlue, tc.Blue},
		{&ColorYellow, tc.Yellow},
		{&ColorRed, tc.Red},
		{&ColorTeal, tc.Teal},
		{&ColorMauve, tc.Mauve},
		{&ColorMuted, tc.Muted},
		{&ColorDim, tc.Dim},
		{&ColorBright, tc.Bright},
	} {
		if o.src != nil {
			*o.dst = lipgloss.Color(*o.src)
		}
	}
	rebuildStyles()
}
