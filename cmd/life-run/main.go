package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"time"

	"github.com/pkg/profile"

	"lifegrid/internal/app"
	"lifegrid/internal/pattern"
	"lifegrid/internal/render"
	"lifegrid/internal/session"
)

type runOptions struct {
	steps   int
	fast    bool
	quiet   bool
	pngPath string
	save    string
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	var opts runOptions
	flag.IntVar(&opts.steps, "steps", 40, "generations to run")
	flag.BoolVar(&opts.fast, "fast", false, "step as fast as possible instead of once per -interval")
	flag.BoolVar(&opts.quiet, "quiet", false, "print only the final board")
	flag.StringVar(&opts.pngPath, "png", "", "write the final board as a PNG image")
	flag.StringVar(&opts.save, "save", "", "write the final board as a YAML pattern")
	profileMode := flag.String("profile", "", "write a cpu or mem profile to the current directory")
	flag.Parse()

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("unknown -profile %q (want cpu or mem)", *profileMode)
	}

	s, err := cfg.NewSession(os.Stderr)
	if err != nil {
		log.Fatalf("life-run: %v", err)
	}

	start := time.Now()
	final := run(context.Background(), s, cfg.Interval, opts, os.Stdout)
	if opts.quiet {
		fmt.Print(render.FrameText(final, '#', '.'))
	}
	fmt.Printf("ran %d generations in %s\n", final.Generation, time.Since(start).Round(time.Millisecond))

	if opts.pngPath != "" {
		if err := writePNG(opts.pngPath, final, cfg.Scale); err != nil {
			log.Fatalf("life-run: %v", err)
		}
	}
	if opts.save != "" {
		data, err := pattern.Marshal(fmt.Sprintf("generation-%d", final.Generation), final.Grid)
		if err != nil {
			log.Fatalf("life-run: %v", err)
		}
		if err := os.WriteFile(opts.save, data, 0o644); err != nil {
			log.Fatalf("life-run: write %s: %v", opts.save, err)
		}
	}
}

// run advances s opts.steps times, printing each frame to out unless quiet,
// and returns the last frame.
func run(ctx context.Context, s *session.Session, interval time.Duration, opts runOptions, out io.Writer) session.Frame {
	show := func(f session.Frame) {
		if !opts.quiet {
			fmt.Fprintln(out, render.FrameText(f, '#', '.'))
		}
	}

	f := s.Frame()
	show(f)
	if opts.steps <= 0 {
		return f
	}

	if opts.fast {
		for i := 0; i < opts.steps; i++ {
			f = s.Step()
			show(f)
		}
		return f
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	frames := make(chan session.Frame)
	r := session.NewRunner(s, interval, func(f session.Frame) {
		select {
		case frames <- f:
		case <-ctx.Done():
		}
	})
	r.Start(ctx)
	for f.Generation < opts.steps {
		f = <-frames
		show(f)
	}
	cancel()
	r.Stop()
	return f
}

func writePNG(path string, f session.Frame, scale int) error {
	img := render.Image(f.Grid.Cells(), len(f.Grid[0]), len(f.Grid), scale, render.DefaultPalette())
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return file.Close()
}
