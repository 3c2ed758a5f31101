package session

import (
	"context"
	"sync"
	"time"

	"lifegrid/internal/core"
)

// Runner steps a Session on a wall-clock interval from its own goroutine and
// hands each frame to a callback. Stop is the pause signal.
type Runner struct {
	session  *Session
	interval time.Duration
	onFrame  func(Frame)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRunner builds a Runner. A non-positive interval uses core.DefaultInterval;
// onFrame may be nil.
func NewRunner(s *Session, interval time.Duration, onFrame func(Frame)) *Runner {
	if interval <= 0 {
		interval = core.DefaultInterval
	}
	if onFrame == nil {
		onFrame = func(Frame) {}
	}
	return &Runner{session: s, interval: interval, onFrame: onFrame}
}

// Interval returns the time between generations.
func (r *Runner) Interval() time.Duration { return r.interval }

// Start begins stepping and marks the session as playing. It returns false if
// the runner was already running.
func (r *Runner) Start(ctx context.Context) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return false
	}
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})
	r.session.Play()
	go r.loop(ctx, r.done)
	return true
}

// Stop cancels the stepping goroutine, waits for it to exit and pauses the
// session. Calling Stop on a stopped runner is a no-op.
func (r *Runner) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	r.session.Pause()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the stepping goroutine is active.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancel != nil
}

func (r *Runner) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// A pause can land between the tick and this check.
			if !r.session.Playing() {
				continue
			}
			r.onFrame(r.session.Step())
		}
	}
}
