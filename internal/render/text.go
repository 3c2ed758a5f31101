package render

import (
	"fmt"
	"strings"

	"lifegrid/internal/life"
	"lifegrid/internal/session"
)

// Text draws a board one line per row.
func Text(g life.Grid, alive, dead rune) string {
	var b strings.Builder
	for row := 0; row < life.Rows; row++ {
		for col := 0; col < life.Cols; col++ {
			if g[row][col] {
				b.WriteRune(alive)
			} else {
				b.WriteRune(dead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Status formats the one-line summary shown under a board.
func Status(f session.Frame) string {
	state := "paused"
	if f.Playing {
		state = "playing"
	}
	return fmt.Sprintf("generation %d  population %d  %s", f.Generation, f.Population, state)
}

// FrameText draws a board followed by its status line.
func FrameText(f session.Frame, alive, dead rune) string {
	return Text(f.Grid, alive, dead) + Status(f) + "\n"
}
