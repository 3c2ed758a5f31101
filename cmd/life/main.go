//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifegrid/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	s, err := cfg.NewSession(os.Stderr)
	if err != nil {
		log.Fatalf("life: %v", err)
	}

	game := app.New(s, cfg)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
