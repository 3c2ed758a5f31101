// Package pattern reads and writes starting configurations for the board.
//
// A pattern is a YAML document that lists live cells either as a picture:
//
//	name: glider
//	origin: {row: 0, col: 0}
//	rows:
//	  - ".#."
//	  - "..#"
//	  - "###"
//
// or as explicit coordinates:
//
//	name: pair
//	cells: [[4, 4], [4, 5]]
//
// Both forms may be combined. Coordinates wrap onto the torus after the
// origin offset is applied.
package pattern

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"lifegrid/internal/life"
)

var (
	// ErrUnknownPreset is returned for a preset name that is not embedded.
	ErrUnknownPreset = errors.New("unknown preset")
	// ErrTooLarge is returned when a picture does not fit on the board.
	ErrTooLarge = errors.New("pattern larger than board")
	// ErrEmpty is returned when a pattern lists neither rows nor cells.
	ErrEmpty = errors.New("pattern has no rows or cells")
	// ErrBadCell is returned for a picture rune that is neither live nor dead.
	ErrBadCell = errors.New("unexpected cell character")
)

// Origin offsets a pattern on the board.
type Origin struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Pattern is a named starting configuration.
type Pattern struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Origin      Origin   `yaml:"origin,omitempty"`
	Rows        []string `yaml:"rows,omitempty"`
	Cells       [][2]int `yaml:"cells,omitempty,flow"`
}

// Parse decodes a single pattern document.
func Parse(data []byte) (Pattern, error) {
	var p Pattern
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Pattern{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Pattern{}, err
	}
	return p, nil
}

// ParseAll decodes a YAML list of patterns.
func ParseAll(data []byte) ([]Pattern, error) {
	var ps []Pattern
	if err := yaml.Unmarshal(data, &ps); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	for i := range ps {
		if err := ps[i].Validate(); err != nil {
			return nil, fmt.Errorf("pattern %d (%q): %w", i, ps[i].Name, err)
		}
	}
	return ps, nil
}

// Load reads a pattern file from disk.
func Load(path string) (Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pattern{}, fmt.Errorf("read %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return Pattern{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return p, nil
}

// Validate checks that the pattern fits on the board and uses known runes.
func (p Pattern) Validate() error {
	if len(p.Rows) == 0 && len(p.Cells) == 0 {
		return ErrEmpty
	}
	if len(p.Rows) > life.Rows {
		return fmt.Errorf("%d rows: %w", len(p.Rows), ErrTooLarge)
	}
	for i, line := range p.Rows {
		if n := len([]rune(line)); n > life.Cols {
			return fmt.Errorf("row %d has %d columns: %w", i, n, ErrTooLarge)
		}
		for _, r := range line {
			if _, ok := cellRune(r); !ok {
				return fmt.Errorf("row %d: %q: %w", i, r, ErrBadCell)
			}
		}
	}
	return nil
}

func cellRune(r rune) (alive, ok bool) {
	switch r {
	case '#', 'O', '*', 'X', 'x', 'o':
		return true, true
	case '.', ' ', '-', '_':
		return false, true
	}
	return false, false
}

// Live returns the wrapped board coordinates of every live cell, sorted and
// without duplicates.
func (p Pattern) Live() ([][2]int, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	var out [][2]int
	for r, line := range p.Rows {
		for c, ch := range []rune(line) {
			if alive, _ := cellRune(ch); alive {
				row, col := life.Wrap(p.Origin.Row+r, p.Origin.Col+c)
				out = append(out, [2]int{row, col})
			}
		}
	}
	for _, cell := range p.Cells {
		row, col := life.Wrap(p.Origin.Row+cell[0], p.Origin.Col+cell[1])
		out = append(out, [2]int{row, col})
	}
	slices.SortFunc(out, func(a, b [2]int) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}
		return a[1] - b[1]
	})
	return slices.Compact(out), nil
}

// Grid stamps the pattern onto an empty board.
func (p Pattern) Grid() (life.Grid, error) {
	var g life.Grid
	live, err := p.Live()
	if err != nil {
		return g, err
	}
	for _, c := range live {
		g.Set(c[0], c[1], true)
	}
	return g, nil
}

// FromGrid captures a board as a picture pattern.
func FromGrid(name string, g life.Grid) Pattern {
	lines := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	return Pattern{Name: name, Rows: lines}
}

// Marshal encodes a board as a pattern document.
func Marshal(name string, g life.Grid) ([]byte, error) {
	data, err := yaml.Marshal(FromGrid(name, g))
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}
