package splash

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bamsammich/preroll/internal/sched"
)

func TestFraction(t *testing.T) {
	tests := []struct {
		elapsed  time.Duration
		duration time.Duration
		want     float64
	}{
		{0, time.Second, 0},
		{-time.Second, time.Second, 0},
		{500 * time.Millisecond, time.Second, 0.5},
		{time.Second, time.Second, 1},
		{3 * time.Second, time.Second, 1},
		{time.Second, 0, 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Fraction(tt.elapsed, tt.duration), 1e-9,
			"elapsed %s duration %s", tt.elapsed, tt.duration)
	}
}

func TestAnimatorMonotoneAndBounded(t *testing.T) {
	v := sched.NewVirtual(epoch)
	var samples []float64
	a := StartAnimator(v, 1800*time.Millisecond, 16*time.Millisecond, func(f float64) {
		samples = append(samples, f)
	})

	for range 200 {
		v.Advance(16 * time.Millisecond)
	}

	require.NotEmpty(t, samples)
	for i := 1; i < len(samples); i++ {
		assert.GreaterOrEqual(t, samples[i], samples[i-1])
	}
	for _, f := range samples {
		assert.LessOrEqual(t, f, 1.0)
		assert.Greater(t, f, 0.0)
	}
	assert.InDelta(t, 1.0, samples[len(samples)-1], 1e-9)
	assert.InDelta(t, 1.0, a.Fraction(), 1e-9)
	assert.Zero(t, v.Pending(), "animator keeps scheduling after reaching 1")
}

func TestAnimatorTracksElapsedTime(t *testing.T) {
	v := sched.NewVirtual(epoch)
	a := StartAnimator(v, 2200*time.Millisecond, 16*time.Millisecond, nil)

	v.Advance(1100 * time.Millisecond)
	assert.InDelta(t, 0.5, a.Fraction(), 0.01)
}

func TestAnimatorStop(t *testing.T) {
	v := sched.NewVirtual(epoch)
	frames := 0
	a := StartAnimator(v, time.Second, 16*time.Millisecond, func(float64) { frames++ })

	v.Advance(100 * time.Millisecond)
	seen := frames
	a.Stop()
	v.Advance(time.Second)

	assert.Equal(t, seen, frames)
	assert.Zero(t, v.Pending())
	assert.Less(t, a.Fraction(), 1.0)
}
