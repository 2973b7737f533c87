package sched

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nextTask(t *testing.T, l *Loop) func() {
	t.Helper()
	select {
	case fn := <-l.Tasks():
		return fn
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for queued task")
		return nil
	}
}

func TestLoopAfterFuncQueuesOnFire(t *testing.T) {
	fc := clockwork.NewFakeClock()
	l := NewLoop(fc)
	defer l.Close()

	called := false
	l.AfterFunc(time.Second, func() { called = true })

	fc.Advance(time.Second)
	nextTask(t, l)()
	assert.True(t, called)
}

func TestLoopStopDiscardsQueuedCallback(t *testing.T) {
	fc := clockwork.NewFakeClock()
	l := NewLoop(fc)
	defer l.Close()

	called := false
	h := l.AfterFunc(time.Second, func() { called = true })

	fc.Advance(time.Second)
	fn := nextTask(t, l)
	h.Stop() // timer already fired; its callback sits in the queue
	fn()
	assert.False(t, called)
}

func TestLoopPost(t *testing.T) {
	l := NewLoop(nil)
	defer l.Close()

	go l.Post(func() {})
	require.NotNil(t, nextTask(t, l))
}

func TestLoopRunUntilDone(t *testing.T) {
	l := NewLoop(clockwork.NewFakeClock())
	defer l.Close()

	done := make(chan struct{})
	l.Post(func() { close(done) })

	err := l.Run(context.Background(), done)
	require.NoError(t, err)
}

func TestLoopRunContextCancelled(t *testing.T) {
	l := NewLoop(clockwork.NewFakeClock())
	defer l.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := l.Run(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoopCloseReleasesProducers(t *testing.T) {
	l := NewLoop(clockwork.NewFakeClock())
	for range taskQueueSize {
		l.Post(func() {})
	}

	released := make(chan struct{})
	go func() {
		l.Post(func() {}) // queue is full
		close(released)
	}()

	l.Close()
	select {
	case <-released:
	case <-time.After(2 * time.Second):
		t.Fatal("producer still blocked after Close")
	}
}
