//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the control strip under the board: Play/Stop, Step and Reset
// buttons and a generation/population readout.
type HUD struct {
	status  core.ParameterProvider
	width   int
	top     int
	buttons []Button

	pixel *ebiten.Image
}

// NewHUD constructs a HUD spanning width pixels whose strip starts top pixels
// from the top of the screen.
func NewHUD(status core.ParameterProvider, width, top int) *HUD {
	h := &HUD{status: status, width: width, top: top}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	h.buttons = LayoutButtons(width, top, false)
	return h
}

// Update relays out the buttons for the current play state and returns the
// action of a button clicked this frame.
func (h *HUD) Update(playing bool) Action {
	if h == nil {
		return ActionNone
	}
	h.buttons = LayoutButtons(h.width, h.top, playing)
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return ActionNone
	}
	mx, my := ebiten.CursorPosition()
	return HitButton(h.buttons, mx, my)
}

// Draw paints the strip onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.width <= 0 {
		return
	}
	h.fillRect(screen, 0, h.top, h.width, PanelHeight, color.RGBA{R: 16, G: 16, B: 20, A: 255})
	for _, b := range h.buttons {
		h.drawButton(screen, b)
	}

	snap := h.status.Parameters()
	gen, _ := snap.Lookup("generation")
	pop, _ := snap.Lookup("population")
	line := fmt.Sprintf("Gen %s  Pop %s", gen.Value, pop.Value)
	text.Draw(screen, line, basicfont.Face7x13, buttonGap, h.top+PanelHeight-6, color.RGBA{R: 200, G: 200, B: 210, A: 255})
}

func (h *HUD) drawButton(screen *ebiten.Image, b Button) {
	h.fillRect(screen, b.X, b.Y, b.W, b.H, color.RGBA{R: 54, G: 56, B: 64, A: 255})

	face := basicfont.Face7x13
	bounds := text.BoundString(face, b.Label)
	x := b.X + (b.W-bounds.Dx())/2
	y := b.Y + (b.H-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, b.Label, face, x, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

func (h *HUD) fillRect(dst *ebiten.Image, x, y, w, hgt int, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(hgt))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(h.pixel, op)
}
