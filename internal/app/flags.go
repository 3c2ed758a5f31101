package app

import (
	"flag"
	"fmt"
	"io"
	"log"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/pattern"
	"lifegrid/internal/session"
)

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Pattern  string
	Scale    int
	Interval time.Duration
	Seed     int64
	Random   bool
	Play     bool
	Verbose  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 48, Interval: core.DefaultInterval, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "preset name or YAML pattern file to start from")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations while playing")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards")
	fs.BoolVar(&c.Random, "random", c.Random, "start from a random board instead of an empty one")
	fs.BoolVar(&c.Play, "play", c.Play, "start playing immediately")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log every generation")
}

// NewSession builds the starting session the flags describe. Generation
// traces go to logOut when Verbose is set.
func (c *Config) NewSession(logOut io.Writer) (*session.Session, error) {
	opts := []session.Option{session.WithInterval(c.Interval)}
	if c.Verbose && logOut != nil {
		opts = append(opts, session.WithLogger(log.New(logOut, "life: ", log.Lmicroseconds)))
	}
	s := session.New(opts...)

	switch {
	case c.Pattern != "":
		p, err := pattern.Resolve(c.Pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", c.Pattern, err)
		}
		if err := s.Load(p); err != nil {
			return nil, err
		}
	case c.Random:
		s.Randomize(c.Seed)
	}
	if c.Play {
		s.Play()
	}
	return s, nil
}
