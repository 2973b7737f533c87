package ui

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders the newest width samples as Unicode block characters,
// scaled to the largest sample shown. Short input is padded on the left.
func Sparkline(data []float64, width int) string {
	if width <= 0 {
		return ""
	}
	samples := tail(data, width)

	peak := 0.0
	for _, v := range samples {
		peak = max(peak, v)
	}

	out := make([]rune, width)
	for i, v := range samples {
		out[i] = sparkBlock(v, peak)
	}
	return string(out)
}

func sparkBlock(v, peak float64) rune {
	if peak <= 0 || v <= 0 {
		return sparkBlocks[0]
	}
	top := len(sparkBlocks) - 1
	return sparkBlocks[min(int(v/peak*float64(top)), top)]
}

// tail returns exactly n values: the last n of data, left-padded with zeros.
func tail(data []float64, n int) []float64 {
	out := make([]float64, n)
	if len(data) >= n {
		copy(out, data[len(data)-n:])
		return out
	}
	copy(out[n-len(data):], data)
	return out
}
