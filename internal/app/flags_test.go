package app

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
	"time"

	"lifegrid/internal/pattern"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-pattern", "glider", "-interval", "250ms", "-scale", "20", "-play", "-seed", "9"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Pattern != "glider" || cfg.Interval != 250*time.Millisecond || cfg.Scale != 20 || !cfg.Play || cfg.Seed != 9 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Interval != 100*time.Millisecond {
		t.Fatalf("default interval = %s", cfg.Interval)
	}
	s, err := cfg.NewSession(nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Population() != 0 || s.Playing() {
		t.Fatal("default session should be empty and paused")
	}
}

func TestNewSessionFromPreset(t *testing.T) {
	cfg := NewConfig()
	cfg.Pattern = "blinker"
	cfg.Play = true
	cfg.Verbose = true

	var buf bytes.Buffer
	s, err := cfg.NewSession(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if s.Population() != 3 || !s.Playing() {
		t.Fatalf("population=%d playing=%v", s.Population(), s.Playing())
	}
	s.Step()
	if !strings.Contains(buf.String(), "generation 1 population 3") {
		t.Fatalf("verbose log = %q", buf.String())
	}
}

func TestNewSessionRandom(t *testing.T) {
	cfg := NewConfig()
	cfg.Random = true
	a, err := cfg.NewSession(nil)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := cfg.NewSession(nil)
	if a.Grid() != b.Grid() {
		t.Fatal("same seed should give the same random board")
	}
	if a.Population() == 0 {
		t.Fatal("random board is empty")
	}
}

func TestNewSessionUnknownPattern(t *testing.T) {
	cfg := NewConfig()
	cfg.Pattern = "no-such-pattern"
	if _, err := cfg.NewSession(nil); !errors.Is(err, pattern.ErrUnknownPreset) {
		t.Fatalf("err = %v, expected ErrUnknownPreset", err)
	}
}
