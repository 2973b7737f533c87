package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparkline(t *testing.T) {
	tests := []struct {
		name  string
		data  []float64
		width int
		want  string
	}{
		{"all zeros", []float64{0, 0, 0, 0}, 4, "▁▁▁▁"},
		{"empty", nil, 3, "▁▁▁"},
		{"zero width", []float64{1, 2, 3}, 0, ""},
		{"padded left", []float64{100}, 4, "▁▁▁█"},
		{"ramp", []float64{1, 2, 3, 4, 5, 6, 7, 8}, 8, "▁▂▃▄▅▆▇█"},
		{"flat is max", []float64{5, 5, 5}, 3, "███"},
		{"keeps newest", []float64{80, 80, 0, 10, 20}, 3, "▁▄█"},
		{"negative is floor", []float64{-4, 2}, 2, "▁█"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sparkline(tt.data, tt.width)
			assert.Equal(t, tt.want, got)
			assert.Len(t, []rune(got), tt.width)
		})
	}
}
