package splash

// Tier is the presentation mode selected from the viewport width.
type Tier int

const (
	Compact Tier = iota + 1
	Medium
	Large
)

// Width thresholds in pixels.
const (
	MediumMinWidth = 768
	LargeMinWidth  = 1024
)

var tierNames = [...]string{
	Compact: "compact",
	Medium:  "medium",
	Large:   "large",
}

func (t Tier) String() string {
	if t > 0 && int(t) < len(tierNames) {
		return tierNames[t]
	}
	return "unknown"
}

// Classify maps a viewport width in pixels to a Tier. Every width maps to
// exactly one tier; zero and negative widths are Compact.
func Classify(width int) Tier {
	switch {
	case width >= LargeMinWidth:
		return Large
	case width >= MediumMinWidth:
		return Medium
	default:
		return Compact
	}
}
