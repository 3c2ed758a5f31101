package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"lifegrid/internal/app"
	"lifegrid/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logFile := flag.String("log", "", "file for -v generation traces (the terminal is busy drawing)")
	flag.Parse()

	logOut := os.Stderr
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("opening log: %v", err)
		}
		defer f.Close()
		logOut = f
	} else if cfg.Verbose {
		log.Printf("-v without -log would scribble over the board; traces disabled")
		cfg.Verbose = false
	}

	s, err := cfg.NewSession(logOut)
	if err != nil {
		log.Fatalf("life-term: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	screen.EnableMouse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = term.New(screen, s, cfg.Interval, cfg.Seed).Run(ctx)
	screen.Fini()
	if err != nil {
		log.Fatalf("life-term: %v", err)
	}
}
