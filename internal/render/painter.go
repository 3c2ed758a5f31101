//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one RGBA image of the board and redraws it from cell data.
type GridPainter struct {
	w, h    int
	scale   int
	palette Palette
	img     *ebiten.Image
	buf     []byte
}

// NewGridPainter allocates a painter for a w*h board at scale pixels per cell.
func NewGridPainter(w, h, scale int, p Palette) *GridPainter {
	if scale < 2 {
		scale = 2
	}
	pw, ph := PixelSize(w, h, scale)
	return &GridPainter{
		w:       w,
		h:       h,
		scale:   scale,
		palette: p,
		img:     ebiten.NewImage(pw, ph),
		buf:     make([]byte, 4*pw*ph),
	}
}

// Blit uploads the provided cells into the painter image and draws it at the
// origin of dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillCellsRGBA(gp.buf, cells, gp.w, gp.h, gp.scale, gp.palette)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the pixel dimensions of the painted board.
func (gp *GridPainter) Size() (int, int) { return PixelSize(gp.w, gp.h, gp.scale) }

// Scale returns the side of one cell in pixels.
func (gp *GridPainter) Scale() int { return gp.scale }
