// Package maze holds the tile map of the Pac-Man simulation: tile kinds,
// their capabilities, tunnel wraparound and pellet consumption.
package maze

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadLayout is returned when a layout cannot form a valid grid.
var ErrBadLayout = errors.New("maze: bad layout")

// Grid is a fixed-size matrix of tiles stored in row-major order.
// It remembers its initial contents so pellets can be restored on refill.
type Grid struct {
	cols     int
	rows     int
	tiles    []Tile
	pristine []Tile
	wrapRows []bool
}

// New parses a layout into a grid. Every row must have the same width, the
// outer border must be wall, and only the end tiles of tunnel rows may be
// open on the left and right edges.
func New(layout []string, tunnelRows ...int) (*Grid, error) {
	if len(layout) < 3 {
		return nil, fmt.Errorf("%w: need at least 3 rows, got %d", ErrBadLayout, len(layout))
	}

	rows := len(layout)
	cols := len([]rune(layout[0]))
	if cols < 3 {
		return nil, fmt.Errorf("%w: need at least 3 columns, got %d", ErrBadLayout, cols)
	}

	g := &Grid{
		cols:     cols,
		rows:     rows,
		tiles:    make([]Tile, 0, cols*rows),
		wrapRows: make([]bool, rows),
	}

	for _, r := range tunnelRows {
		if r <= 0 || r >= rows-1 {
			return nil, fmt.Errorf("%w: tunnel row %d outside the interior", ErrBadLayout, r)
		}
		g.wrapRows[r] = true
	}

	for y, line := range layout {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrBadLayout, y, len(runes), cols)
		}
		for x, ch := range runes {
			t, ok := tileFromRune(ch)
			if !ok {
				return nil, fmt.Errorf("%w: unknown tile %q at (%d,%d)", ErrBadLayout, ch, x, y)
			}
			g.tiles = append(g.tiles, t)
		}
	}

	if err := g.checkBorder(); err != nil {
		return nil, err
	}

	g.pristine = make([]Tile, len(g.tiles))
	copy(g.pristine, g.tiles)
	return g, nil
}

// MustNew is like New but panics on error. Intended for embedded layouts and tests.
func MustNew(layout []string, tunnelRows ...int) *Grid {
	g, err := New(layout, tunnelRows...)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) checkBorder() error {
	for x := 0; x < g.cols; x++ {
		if g.At(C(x, 0)) != Wall || g.At(C(x, g.rows-1)) != Wall {
			return fmt.Errorf("%w: open border at column %d", ErrBadLayout, x)
		}
	}
	for y := 0; y < g.rows; y++ {
		if g.wrapRows[y] {
			continue
		}
		if g.At(C(0, y)) != Wall || g.At(C(g.cols-1, y)) != Wall {
			return fmt.Errorf("%w: open border at row %d", ErrBadLayout, y)
		}
	}
	return nil
}

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.cols && c.Y >= 0 && c.Y < g.rows
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.cols + c.X
}

// At returns the tile at c. Coordinates outside the grid read as Wall.
func (g *Grid) At(c Coord) Tile {
	if !g.InBounds(c) {
		return Wall
	}
	return g.tiles[g.index(c)]
}

// Set overwrites the tile at c. The pristine layout is not changed, so a
// later Refill restores pellets from the pristine layout only.
func (g *Grid) Set(c Coord, t Tile) {
	if g.InBounds(c) {
		g.tiles[g.index(c)] = t
	}
}

// Consume removes whatever pellet sits at c and returns the tile kind that
// was there before. Dot and PowerPellet become Path; other kinds are left
// untouched, so consuming twice is a no-op.
func (g *Grid) Consume(c Coord) Tile {
	prior := g.At(c)
	if prior.Caps().Has(CapPellet) {
		g.tiles[g.index(c)] = Path
	}
	return prior
}

// Wraps reports whether columns wrap around on the given row.
func (g *Grid) Wraps(row int) bool {
	return row >= 0 && row < g.rows && g.wrapRows[row]
}

// Wrap folds an out-of-range column back into the grid on tunnel rows.
// Coordinates on other rows are returned unchanged.
func (g *Grid) Wrap(c Coord) Coord {
	if !g.Wraps(c.Y) {
		return c
	}
	switch {
	case c.X < 0:
		c.X = g.cols - 1
	case c.X >= g.cols:
		c.X = 0
	}
	return c
}

// Neighbor returns the tile one step from c in direction d. wrapped is true
// when the step crossed a tunnel edge; ok is false when the step leaves the
// grid on a row that does not wrap.
func (g *Grid) Neighbor(c Coord, d Dir) (n Coord, wrapped, ok bool) {
	n = c.Step(d)
	if g.InBounds(n) {
		return n, false, true
	}
	if n.Y >= 0 && n.Y < g.rows && g.Wraps(n.Y) {
		return g.Wrap(n), true, true
	}
	return n, false, false
}

// CanMove reports whether mover m standing on from may step in direction d,
// tunnel edges included.
func (g *Grid) CanMove(from Coord, d Dir, m Mover) bool {
	if d == DirNone {
		return false
	}
	n, _, ok := g.Neighbor(from, d)
	if !ok {
		return false
	}
	return g.At(n).Caps().Allows(m, d)
}

// PelletCount returns the number of Dot and PowerPellet tiles left.
func (g *Grid) PelletCount() int {
	n := 0
	for _, t := range g.tiles {
		if t.Caps().Has(CapPellet) {
			n++
		}
	}
	return n
}

// Count returns how many tiles of kind t are on the grid.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, tile := range g.tiles {
		if tile == t {
			n++
		}
	}
	return n
}

// Refill restores every Dot and PowerPellet of the original layout.
// Walls, paths and doors are unaffected.
func (g *Grid) Refill() {
	for i, t := range g.pristine {
		if t.Caps().Has(CapPellet) {
			g.tiles[i] = t
		}
	}
}

// Tiles returns a row-major copy of the tile matrix.
func (g *Grid) Tiles() []Tile {
	out := make([]Tile, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		cols:     g.cols,
		rows:     g.rows,
		tiles:    make([]Tile, len(g.tiles)),
		pristine: make([]Tile, len(g.pristine)),
		wrapRows: make([]bool, len(g.wrapRows)),
	}
	copy(c.tiles, g.tiles)
	copy(c.pristine, g.pristine)
	copy(c.wrapRows, g.wrapRows)
	return c
}

// String renders the grid in layout notation, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.cols + 1) * g.rows)
	for y := 0; y < g.rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.cols; x++ {
			sb.WriteRune(g.At(C(x, y)).Rune())
		}
	}
	return sb.String()
}
