package session

import (
	"context"
	"testing"
	"time"
)

func TestRunnerStepsUntilStopped(t *testing.T) {
	s := New()
	s.Set(1, 2, true)
	s.Set(2, 2, true)
	s.Set(3, 2, true)

	frames := make(chan Frame, 64)
	r := NewRunner(s, 5*time.Millisecond, func(f Frame) {
		select {
		case frames <- f:
		default:
		}
	})

	if !r.Start(context.Background()) {
		t.Fatal("Start should report true on a stopped runner")
	}
	if r.Start(context.Background()) {
		t.Fatal("second Start should report false")
	}
	if !r.Running() || !s.Playing() {
		t.Fatal("runner should be running and session playing")
	}

	for want := 1; want <= 3; want++ {
		select {
		case f := <-frames:
			if f.Generation != want {
				t.Fatalf("frame generation = %d, expected %d", f.Generation, want)
			}
			if f.Population != 3 {
				t.Fatalf("blinker population = %d, expected 3", f.Population)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for generation %d", want)
		}
	}

	r.Stop()
	if r.Running() || s.Playing() {
		t.Fatal("runner should be stopped and session paused")
	}

	gen := s.Generation()
	time.Sleep(30 * time.Millisecond)
	if s.Generation() != gen {
		t.Fatalf("generation advanced after Stop: %d -> %d", gen, s.Generation())
	}

	r.Stop()
}

func TestRunnerSkipsTicksWhilePaused(t *testing.T) {
	s := New()
	r := NewRunner(s, 2*time.Millisecond, nil)
	r.Start(context.Background())
	s.Pause()
	time.Sleep(20 * time.Millisecond)
	gen := s.Generation()
	time.Sleep(20 * time.Millisecond)
	if s.Generation() != gen {
		t.Fatal("paused session advanced")
	}
	r.Stop()
}

func TestRunnerRestart(t *testing.T) {
	s := New()
	r := NewRunner(s, 2*time.Millisecond, nil)
	r.Start(context.Background())
	r.Stop()
	if !r.Start(context.Background()) {
		t.Fatal("runner should start again after Stop")
	}
	deadline := time.Now().Add(2 * time.Second)
	for s.Generation() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("restarted runner never stepped")
		}
		time.Sleep(time.Millisecond)
	}
	r.Stop()
}

func TestRunnerDefaultInterval(t *testing.T) {
	r := NewRunner(New(), 0, nil)
	if r.Interval() != 100*time.Millisecond {
		t.Fatalf("interval = %s", r.Interval())
	}
}
