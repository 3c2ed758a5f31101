// Package session owns the state a front end drives: the current board, the
// generation counter and whether play is on. The board is an explicit
// life.Grid so no widget is ever the source of truth.
package session

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"sync"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
	"lifegrid/internal/pattern"
)

// Frame is one generation plus what a renderer shows next to it.
type Frame struct {
	Grid       life.Grid
	Generation int
	Population int
	Playing    bool
}

// Session serializes every edit and step on a single board.
type Session struct {
	mu         sync.Mutex
	grid       life.Grid
	generation int
	playing    bool
	interval   time.Duration
	logger     *log.Logger
}

var (
	_ core.Board             = (*Session)(nil)
	_ core.ParameterProvider = (*Session)(nil)
)

// Option configures a Session.
type Option func(*Session)

// WithGrid sets the starting board.
func WithGrid(g life.Grid) Option {
	return func(s *Session) { s.grid = g }
}

// WithLogger traces every generation to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithInterval records the tick interval the front end uses. It is only
// reported in Parameters.
func WithInterval(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.interval = d
		}
	}
}

// New returns a paused session on an empty board unless options say otherwise.
func New(opts ...Option) *Session {
	s := &Session{
		interval: core.DefaultInterval,
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Size returns the board dimensions.
func (s *Session) Size() core.Size { return core.Size{W: life.Cols, H: life.Rows} }

// Grid returns a copy of the current board.
func (s *Session) Grid() life.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

// Generation returns how many steps have run since the last reset.
func (s *Session) Generation() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Population counts the live cells on the current board.
func (s *Session) Population() int {
	g := s.Grid()
	return g.Population()
}

// Playing reports whether the front end should keep stepping.
func (s *Session) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// Frame snapshots the session.
func (s *Session) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameLocked()
}

func (s *Session) frameLocked() Frame {
	return Frame{
		Grid:       s.grid,
		Generation: s.generation,
		Population: s.grid.Population(),
		Playing:    s.playing,
	}
}

// Toggle flips a cell, wrapping the coordinates, and reports its new state.
func (s *Session) Toggle(row, col int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Toggle(row, col)
}

// Set assigns a cell, wrapping the coordinates.
func (s *Session) Set(row, col int, alive bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.Set(row, col, alive)
}

// Step advances one generation and returns the resulting frame.
func (s *Session) Step() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid = life.Step(s.grid)
	s.generation++
	f := s.frameLocked()
	s.logger.Printf("generation %d population %d", f.Generation, f.Population)
	return f
}

// Play turns continuous stepping on.
func (s *Session) Play() { s.setPlaying(true) }

// Pause turns continuous stepping off.
func (s *Session) Pause() { s.setPlaying(false) }

// TogglePlay flips play/pause and returns the new playing state.
func (s *Session) TogglePlay() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = !s.playing
	return s.playing
}

func (s *Session) setPlaying(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = v
}

// Reset kills every cell, zeroes the generation counter and pauses.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.Clear()
	s.generation = 0
	s.playing = false
}

// Randomize fills the board from seed with roughly half the cells alive and
// zeroes the generation counter.
func (s *Session) Randomize(seed int64) {
	rng := core.NewRNG(seed)
	var g life.Grid
	for row := range g {
		for col := range g[row] {
			g[row][col] = rng.Bool()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid = g
	s.generation = 0
}

// Load replaces the board with a pattern and zeroes the generation counter.
func (s *Session) Load(p pattern.Pattern) error {
	g, err := p.Grid()
	if err != nil {
		return fmt.Errorf("load pattern %q: %w", p.Name, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid = g
	s.generation = 0
	return nil
}

// Parameters reports the session status for HUD display.
func (s *Session) Parameters() core.ParameterSnapshot {
	s.mu.Lock()
	f := s.frameLocked()
	interval := s.interval
	s.mu.Unlock()

	state := "paused"
	if f.Playing {
		state = "playing"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(f.Generation)},
				{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(f.Population)},
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				{Key: "state", Label: "State", Type: core.ParamTypeString, Value: state},
				{Key: "interval", Label: "Interval", Type: core.ParamTypeDuration, Value: interval.String()},
			},
		},
	}}
}
