package maze

import "fmt"

// Dir is a movement direction on the tile grid.
type Dir int

const (
	DirNone Dir = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// SearchOrder is the neighbor visit order used by breadth-first search.
// When several shortest paths exist, the earliest direction here wins.
var SearchOrder = [4]Dir{DirRight, DirLeft, DirDown, DirUp}

// Delta returns the column and row offsets for one step in this direction.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. DirNone is its own opposite.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// MarshalText encodes the direction by name.
func (d Dir) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction name written by MarshalText.
func (d *Dir) UnmarshalText(text []byte) error {
	v, ok := ParseDir(string(text))
	if !ok {
		return fmt.Errorf("maze: unknown direction %q", text)
	}
	*d = v
	return nil
}

// ParseDir maps a direction name back to its value.
func ParseDir(s string) (Dir, bool) {
	switch s {
	case "none":
		return DirNone, true
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	default:
		return DirNone, false
	}
}

func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Coord addresses a tile by column (X) and row (Y).
// X increases to the right, Y increases downward.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the coordinate offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the coordinate one tile away in direction d, without wrapping.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
