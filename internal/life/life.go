// Package life implements Conway's Game of Life on a fixed 10x10 torus.
//
// The engine is stateless: Step takes one generation and returns the next.
// Callers own the current Grid and decide when to advance it.
package life

// CountLiveNeighbors returns how many of the eight cells around (row, col)
// are alive. Neighbors wrap across the edges, so row -1 is row 9 and row 10
// is row 0.
func CountLiveNeighbors(g Grid, row, col int) int {
	row, col = Wrap(row, col)
	neighbors := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr := (row + dr + Rows) % Rows
			nc := (col + dc + Cols) % Cols
			if g[nr][nc] {
				neighbors++
			}
		}
	}
	return neighbors
}

// ApplyRule returns the next state of a cell under B3/S23: a live cell
// survives with two or three live neighbors, a dead cell is born with exactly
// three.
func ApplyRule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Step computes the generation after g. Every cell is evaluated against g
// itself, never against partially written output.
func Step(g Grid) Grid {
	var next Grid
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			next[row][col] = ApplyRule(g[row][col], CountLiveNeighbors(g, row, col))
		}
	}
	return next
}
