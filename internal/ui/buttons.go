package ui

import "lifegrid/internal/life"

// Action is what a HUD button asks the front end to do.
type Action int

const (
	ActionNone Action = iota
	ActionPlay
	ActionStep
	ActionReset
)

// PanelHeight is the height in pixels of the control strip under the board.
const PanelHeight = 56

const (
	buttonHeight = 24
	buttonGap    = 8
)

// Button is a clickable rectangle in screen pixels.
type Button struct {
	Label  string
	Action Action
	X, Y   int
	W, H   int
}

// Contains reports whether (x, y) falls inside the button.
func (b Button) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// LayoutButtons places the Play/Stop, Step and Reset buttons in a row across
// width, starting top pixels from the top of the screen.
func LayoutButtons(width, top int, playing bool) []Button {
	play := "Play"
	if playing {
		play = "Stop"
	}
	specs := []struct {
		label  string
		action Action
	}{
		{play, ActionPlay},
		{"Step", ActionStep},
		{"Reset", ActionReset},
	}
	w := (width - buttonGap*(len(specs)+1)) / len(specs)
	if w < 1 {
		w = 1
	}
	buttons := make([]Button, len(specs))
	for i, s := range specs {
		buttons[i] = Button{
			Label:  s.label,
			Action: s.action,
			X:      buttonGap + i*(w+buttonGap),
			Y:      top + buttonGap,
			W:      w,
			H:      buttonHeight,
		}
	}
	return buttons
}

// HitButton returns the action of the button under (x, y), if any.
func HitButton(buttons []Button, x, y int) Action {
	for _, b := range buttons {
		if b.Contains(x, y) {
			return b.Action
		}
	}
	return ActionNone
}

// NeighborLabel is a neighbor count drawn over one cell.
type NeighborLabel struct {
	Row, Col int
	Count    int
}

// NeighborLabels lists the non-zero live-neighbor counts of g.
func NeighborLabels(g life.Grid) []NeighborLabel {
	var out []NeighborLabel
	for row := 0; row < life.Rows; row++ {
		for col := 0; col < life.Cols; col++ {
			if n := life.CountLiveNeighbors(g, row, col); n > 0 {
				out = append(out, NeighborLabel{Row: row, Col: col, Count: n})
			}
		}
	}
	return out
}
