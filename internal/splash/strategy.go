package splash

import (
	"context"
	"time"

	"github.com/bamsammich/preroll/internal/event"
	"github.com/bamsammich/preroll/internal/media"
	"github.com/bamsammich/preroll/internal/sched"
)

// strategy is the active tier's timing logic. It owns every timer, frame and
// listener it registers, and stop releases all of them.
type strategy interface {
	start()
	stop()
}

// timedStrategy completes after a fixed delay and animates progress alongside.
type timedStrategy struct {
	c        *Controller
	delay    time.Duration
	progress time.Duration
	timer    sched.Handle
	anim     *Animator
}

func (s *timedStrategy) start() {
	s.anim = StartAnimator(s.c.sched, s.progress, s.c.timings.Frame, s.c.setProgress)
	s.timer = s.c.sched.AfterFunc(s.delay, func() {
		s.c.emit(event.Event{Type: event.TimerExpired})
		s.c.complete(ReasonTimer)
	})
}

func (s *timedStrategy) stop() {
	if s.timer != nil {
		s.timer.Stop()
	}
	if s.anim != nil {
		s.anim.Stop()
	}
}

// mediaStrategy plays the intro clip and completes on whichever comes first:
// the clip ending, the clip failing, or the hard cap.
type mediaStrategy struct {
	c        *Controller
	player   media.Player
	cap      time.Duration
	capTimer sched.Handle
	cancel   context.CancelFunc
	live     bool
}

func (s *mediaStrategy) start() {
	s.live = true
	s.capTimer = s.c.sched.AfterFunc(s.cap, func() {
		s.c.log.Info("media cap reached", "cap", s.cap)
		s.c.emit(event.Event{Type: event.CapExpired})
		s.c.complete(ReasonCap)
	})

	if s.player == nil {
		s.fail(media.ErrNoSource)
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	if err := s.player.Play(ctx, s.listen); err != nil {
		s.fail(err)
		return
	}
	s.c.emit(event.Event{Type: event.MediaStarted})
}

// listen runs on the player's goroutine and hands events to the scheduler thread.
func (s *mediaStrategy) listen(ev media.Event) {
	s.c.sched.Post(func() { s.handle(ev) })
}

func (s *mediaStrategy) handle(ev media.Event) {
	if !s.live {
		return
	}
	switch ev.Type {
	case media.CanPlayThrough:
		if !s.c.view.Ready {
			s.c.view.Ready = true
			s.c.emit(event.Event{Type: event.MediaReady})
		}
	case media.Ended:
		s.c.emit(event.Event{Type: event.MediaEnded})
		s.c.complete(ReasonEnded)
	case media.Error:
		s.fail(ev.Err)
	}
}

// fail treats a playback failure as completion. Nothing is shown to the user.
func (s *mediaStrategy) fail(err error) {
	s.c.log.Warn("media playback failed", "error", err)
	s.c.emit(event.Event{Type: event.MediaFailed, Error: err})
	s.c.complete(ReasonError)
}

func (s *mediaStrategy) stop() {
	s.live = false
	if s.capTimer != nil {
		s.capTimer.Stop()
	}
	if s.cancel != nil {
		s.player.Stop()
		s.cancel()
		s.cancel = nil
	}
}
