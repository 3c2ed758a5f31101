package core

// Size describes the dimensions of a board in cells.
type Size struct {
	W int
	H int
}

// Board is what a front end needs to edit a grid by pointing at it.
type Board interface {
	Size() Size
	// Toggle flips the cell at (row, col) and reports its new state.
	Toggle(row, col int) bool
}

// CellAt maps a point in screen units to the board cell under it, for cells
// cw units wide and ch units tall. ok is false outside the board.
func CellAt(size Size, cw, ch, x, y int) (row, col int, ok bool) {
	if cw <= 0 || ch <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row = x/cw, y/ch
	if col >= size.W || row >= size.H {
		return 0, 0, false
	}
	return row, col, true
}

// ToggleAt flips the cell under (x, y) and reports whether a cell was hit.
func ToggleAt(b Board, cw, ch, x, y int) bool {
	row, col, ok := CellAt(b.Size(), cw, ch, x, y)
	if !ok {
		return false
	}
	b.Toggle(row, col)
	return true
}
