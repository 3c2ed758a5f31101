package render

import (
	"image"
	"image/color"
)

// Palette colors a board the way the button grid looked: yellow live cells,
// light gray dead cells, black borders.
type Palette struct {
	Alive  color.Color
	Dead   color.Color
	Border color.Color
}

// DefaultPalette returns the standard board colors.
func DefaultPalette() Palette {
	return Palette{
		Alive:  color.RGBA{R: 255, G: 255, B: 0, A: 255},
		Dead:   color.RGBA{R: 211, G: 211, B: 211, A: 255},
		Border: color.Black,
	}
}

// fillCellsRGBA paints a w*h board into buf at scale pixels per cell. Each
// cell keeps a one-pixel border on its top and left edge, and the last row and
// column get a closing border, so buf must hold (w*scale+1)*(h*scale+1) pixels.
func fillCellsRGBA(buf []byte, cells []uint8, w, h, scale int, p Palette) {
	alive := rgba(p.Alive)
	dead := rgba(p.Dead)
	border := rgba(p.Border)

	pw := w*scale + 1
	ph := h*scale + 1
	for py := 0; py < ph; py++ {
		for px := 0; px < pw; px++ {
			c := border
			if px%scale != 0 && py%scale != 0 && px < w*scale && py < h*scale {
				c = dead
				if cells[(py/scale)*w+px/scale] != 0 {
					c = alive
				}
			}
			base := (py*pw + px) * 4
			buf[base+0] = c[0]
			buf[base+1] = c[1]
			buf[base+2] = c[2]
			buf[base+3] = c[3]
		}
	}
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// PixelSize returns the image dimensions for a w*h board at scale.
func PixelSize(w, h, scale int) (int, int) {
	if scale < 2 {
		scale = 2
	}
	return w*scale + 1, h*scale + 1
}

// Image renders a board into a new RGBA image. scale below 2 is raised to 2 so
// every cell has at least one interior pixel.
func Image(cells []uint8, w, h, scale int, p Palette) *image.RGBA {
	if scale < 2 {
		scale = 2
	}
	pw, ph := PixelSize(w, h, scale)
	img := image.NewRGBA(image.Rect(0, 0, pw, ph))
	if len(cells) != w*h {
		return img
	}
	fillCellsRGBA(img.Pix, cells, w, h, scale, p)
	return img
}
