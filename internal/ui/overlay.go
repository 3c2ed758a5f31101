//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"lifegrid/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay prints each cell's live-neighbor count on top of the board.
type Overlay struct {
	scale int
	show  bool
}

// NewOverlay constructs a hidden overlay for cells of scale pixels.
func NewOverlay(scale int) *Overlay {
	return &Overlay{scale: scale}
}

// Update toggles visibility on the 1 key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Visible reports whether counts are being drawn.
func (o *Overlay) Visible() bool { return o.show }

// Draw renders the counts for g when visible.
func (o *Overlay) Draw(screen *ebiten.Image, g life.Grid) {
	if !o.show || o.scale <= 0 {
		return
	}
	face := basicfont.Face7x13
	for _, l := range NeighborLabels(g) {
		label := strconv.Itoa(l.Count)
		bounds := text.BoundString(face, label)
		x := l.Col*o.scale + (o.scale-bounds.Dx())/2
		y := l.Row*o.scale + (o.scale+bounds.Dy())/2
		clr := color.RGBA{R: 90, G: 90, B: 90, A: 255}
		if life.ApplyRule(g[l.Row][l.Col], l.Count) {
			clr = color.RGBA{R: 20, G: 120, B: 40, A: 255}
		}
		text.Draw(screen, label, face, x, y, clr)
	}
}
