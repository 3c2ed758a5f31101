package render

import (
	"image/color"
	"strings"
	"testing"

	"lifegrid/internal/life"
	"lifegrid/internal/session"
)

func TestImageColorsCellsAndBorders(t *testing.T) {
	cells := []uint8{
		1, 0,
		0, 1,
	}
	p := DefaultPalette()
	img := Image(cells, 2, 2, 4, p)

	if b := img.Bounds(); b.Dx() != 9 || b.Dy() != 9 {
		t.Fatalf("bounds = %v, expected 9x9", b)
	}

	check := func(x, y int, want color.Color) {
		t.Helper()
		got := img.RGBAAt(x, y)
		wr, wg, wb, wa := want.RGBA()
		if uint32(got.R)<<8|uint32(got.R) != wr || uint32(got.G)<<8|uint32(got.G) != wg ||
			uint32(got.B)<<8|uint32(got.B) != wb || uint32(got.A)<<8|uint32(got.A) != wa {
			t.Fatalf("pixel (%d,%d) = %v, expected %v", x, y, got, want)
		}
	}

	check(0, 0, p.Border)
	check(4, 2, p.Border)
	check(8, 8, p.Border)
	check(2, 2, p.Alive)
	check(6, 2, p.Dead)
	check(2, 6, p.Dead)
	check(6, 6, p.Alive)
}

func TestImageRaisesSmallScale(t *testing.T) {
	img := Image(make([]uint8, 4), 2, 2, 0, DefaultPalette())
	if b := img.Bounds(); b.Dx() != 5 || b.Dy() != 5 {
		t.Fatalf("bounds = %v, expected 5x5", b)
	}
}

func TestImageIgnoresMismatchedCells(t *testing.T) {
	img := Image(make([]uint8, 3), 2, 2, 4, DefaultPalette())
	for _, v := range img.Pix {
		if v != 0 {
			t.Fatal("mismatched cells should leave the image blank")
		}
	}
}

func TestText(t *testing.T) {
	var g life.Grid
	g.Set(0, 9, true)
	out := Text(g, 'O', ' ')
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != life.Rows {
		t.Fatalf("lines = %d", len(lines))
	}
	if lines[0] != "         O" {
		t.Fatalf("first line = %q", lines[0])
	}
}

func TestFrameText(t *testing.T) {
	f := session.Frame{Generation: 7, Population: 3, Playing: true}
	out := FrameText(f, '#', '.')
	if !strings.HasSuffix(out, "generation 7  population 3  playing\n") {
		t.Fatalf("status missing: %q", out)
	}
}
