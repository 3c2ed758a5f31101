package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newFakeStep(interval time.Duration) (*FixedStep, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(interval)
	fs.now = clock.now
	return fs, clock
}

func TestFixedStepFiresOncePerInterval(t *testing.T) {
	fs, clock := newFakeStep(100 * time.Millisecond)

	if fs.ShouldStep() {
		t.Fatal("first call should only start the clock")
	}
	clock.advance(60 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped before interval elapsed")
	}
	clock.advance(40 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected step once interval elapsed")
	}
	if fs.ShouldStep() {
		t.Fatal("stepped twice without time passing")
	}
}

func TestFixedStepDropsBacklog(t *testing.T) {
	fs, clock := newFakeStep(100 * time.Millisecond)
	fs.ShouldStep()

	clock.advance(time.Second)
	if !fs.ShouldStep() {
		t.Fatal("expected step after stall")
	}
	if fs.ShouldStep() {
		t.Fatal("backlog should not produce a burst of steps")
	}
}

func TestFixedStepRestart(t *testing.T) {
	fs, clock := newFakeStep(100 * time.Millisecond)
	fs.ShouldStep()
	clock.advance(90 * time.Millisecond)
	fs.ShouldStep()

	fs.Restart()
	clock.advance(20 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("restart should discard accumulated time")
	}
	clock.advance(100 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected step a full interval after restart")
	}
}

func TestFixedStepDefaultInterval(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != DefaultInterval {
		t.Fatalf("interval = %s, expected %s", fs.Interval(), DefaultInterval)
	}
	fs.SetInterval(-time.Second)
	if fs.Interval() != DefaultInterval {
		t.Fatalf("negative interval should fall back to default, got %s", fs.Interval())
	}
}
