package life

import "strings"

// Grid dimensions. They are fixed; the toroidal wrap relies on them.
const (
	Rows = 10
	Cols = 10
)

// Grid is one generation of cell states indexed as [row][col]. It is an array,
// so assigning or passing a Grid copies it.
type Grid [Rows][Cols]bool

// Wrap maps any coordinate onto the torus.
func Wrap(row, col int) (int, int) {
	row = (row%Rows + Rows) % Rows
	col = (col%Cols + Cols) % Cols
	return row, col
}

// Alive reports whether the cell at (row, col) is alive.
func (g Grid) Alive(row, col int) bool {
	row, col = Wrap(row, col)
	return g[row][col]
}

// Set assigns the liveness of the cell at (row, col).
func (g *Grid) Set(row, col int, alive bool) {
	row, col = Wrap(row, col)
	g[row][col] = alive
}

// Toggle flips the cell at (row, col) and returns its new state.
func (g *Grid) Toggle(row, col int) bool {
	row, col = Wrap(row, col)
	g[row][col] = !g[row][col]
	return g[row][col]
}

// Clear kills every cell.
func (g *Grid) Clear() { *g = Grid{} }

// Population counts the live cells.
func (g Grid) Population() int {
	n := 0
	for row := range g {
		for col := range g[row] {
			if g[row][col] {
				n++
			}
		}
	}
	return n
}

// Empty reports whether no cell is alive.
func (g Grid) Empty() bool { return g == Grid{} }

// Live lists the coordinates of live cells in row-major order.
func (g Grid) Live() [][2]int {
	var out [][2]int
	for row := range g {
		for col := range g[row] {
			if g[row][col] {
				out = append(out, [2]int{row, col})
			}
		}
	}
	return out
}

// Cells returns the grid as a row-major 0/1 buffer for renderers.
func (g Grid) Cells() []uint8 {
	cells := make([]uint8, Rows*Cols)
	for row := range g {
		for col := range g[row] {
			if g[row][col] {
				cells[row*Cols+col] = 1
			}
		}
	}
	return cells
}

// String renders the grid with '#' for live and '.' for dead cells, one line
// per row.
func (g Grid) String() string {
	var b strings.Builder
	b.Grow(Rows * (Cols + 1))
	for row := range g {
		for col := range g[row] {
			if g[row][col] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
