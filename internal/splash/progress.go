package splash

import (
	"time"

	"github.com/bamsammich/preroll/internal/sched"
)

// Fraction returns elapsed/duration clamped to [0, 1]. A non-positive
// duration is already complete.
func Fraction(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return min(float64(elapsed)/float64(duration), 1)
}

// Animator produces a cosmetic progress fraction once per frame until it
// reaches 1. It never requests completion.
type Animator struct {
	s        sched.Scheduler
	duration time.Duration
	start    time.Time
	fraction float64
	onFrame  func(float64)
	handle   sched.Handle
}

// StartAnimator begins animating over duration, calling onFrame on the
// scheduler thread each frame the fraction advances.
func StartAnimator(s sched.Scheduler, duration, frame time.Duration, onFrame func(float64)) *Animator {
	a := &Animator{
		s:        s,
		duration: duration,
		start:    s.Now(),
		onFrame:  onFrame,
	}
	a.handle = s.Every(frame, a.step)
	return a
}

func (a *Animator) step() bool {
	f := Fraction(a.s.Now().Sub(a.start), a.duration)
	if f > a.fraction {
		a.fraction = f
		if a.onFrame != nil {
			a.onFrame(f)
		}
	}
	return f < 1
}

// Fraction returns the last published fraction.
func (a *Animator) Fraction() float64 { return a.fraction }

// Stop cancels further frames.
func (a *Animator) Stop() { a.handle.Stop() }
