package life

import (
	"slices"
	"testing"
)

func TestWrap(t *testing.T) {
	cases := []struct {
		row, col     int
		wantR, wantC int
	}{
		{0, 0, 0, 0},
		{-1, -1, 9, 9},
		{10, 10, 0, 0},
		{-11, 21, 9, 1},
		{5, 9, 5, 9},
	}
	for _, tc := range cases {
		r, c := Wrap(tc.row, tc.col)
		if r != tc.wantR || c != tc.wantC {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), expected (%d,%d)", tc.row, tc.col, r, c, tc.wantR, tc.wantC)
		}
	}
}

func TestAliveWraps(t *testing.T) {
	var g Grid
	g.Set(0, 0, true)
	for _, c := range [][2]int{{0, 0}, {10, 10}, {-10, 20}} {
		if !g.Alive(c[0], c[1]) {
			t.Fatalf("Alive(%d,%d) should address (0,0)", c[0], c[1])
		}
	}
	if g.Alive(-1, -1) {
		t.Fatal("Alive(-1,-1) should address the dead cell (9,9)")
	}
}

func TestToggleAndPopulation(t *testing.T) {
	var g Grid
	if !g.Toggle(-1, 10) {
		t.Fatal("toggle of dead cell should report alive")
	}
	if !g[9][0] {
		t.Fatal("toggle (-1,10) should address (9,0)")
	}
	if g.Population() != 1 {
		t.Fatalf("population = %d, expected 1", g.Population())
	}
	if g.Toggle(9, 0) {
		t.Fatal("second toggle should report dead")
	}
	if !g.Empty() {
		t.Fatal("grid should be empty after toggling twice")
	}
}

func TestCellsAndLive(t *testing.T) {
	var g Grid
	g.Set(0, 1, true)
	g.Set(2, 3, true)

	cells := g.Cells()
	if len(cells) != Rows*Cols {
		t.Fatalf("len(cells) = %d", len(cells))
	}
	if cells[1] != 1 || cells[2*Cols+3] != 1 {
		t.Fatal("cells buffer missing live cells")
	}

	if got, want := g.Live(), [][2]int{{0, 1}, {2, 3}}; !slices.Equal(got, want) {
		t.Fatalf("Live() = %v, expected %v", got, want)
	}

	g.Clear()
	if !g.Empty() {
		t.Fatal("Clear left live cells")
	}
}

func TestString(t *testing.T) {
	var g Grid
	g.Set(0, 0, true)
	s := g.String()
	if len(s) != Rows*(Cols+1) {
		t.Fatalf("len = %d", len(s))
	}
	if s[:Cols+1] != "#.........\n" {
		t.Fatalf("first row = %q", s[:Cols+1])
	}
}
