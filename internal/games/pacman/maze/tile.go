package maze

// Tile is the kind of a single grid cell.
type Tile uint8

const (
	Wall Tile = iota
	Path
	Dot
	PowerPellet
	Door
)

func (t Tile) String() string {
	switch t {
	case Wall:
		return "wall"
	case Path:
		return "path"
	case Dot:
		return "dot"
	case PowerPellet:
		return "power"
	case Door:
		return "door"
	default:
		return "unknown"
	}
}

// Rune returns the layout character for the tile.
func (t Tile) Rune() rune {
	switch t {
	case Wall:
		return '#'
	case Dot:
		return '.'
	case PowerPellet:
		return 'o'
	case Door:
		return '-'
	default:
		return ' '
	}
}

// tileFromRune parses a layout character.
func tileFromRune(r rune) (Tile, bool) {
	switch r {
	case '#':
		return Wall, true
	case ' ':
		return Path, true
	case '.':
		return Dot, true
	case 'o':
		return PowerPellet, true
	case '-':
		return Door, true
	default:
		return Wall, false
	}
}

// Cap is a single tile capability.
type Cap uint8

const (
	// CapPacman marks tiles Pac-Man may enter.
	CapPacman Cap = 1 << iota
	// CapGhost marks tiles a chasing or scared ghost may enter from any side.
	CapGhost
	// CapDeadGhost marks tiles a ghost returning home may enter.
	CapDeadGhost
	// CapGhostExit marks tiles a living ghost may enter only while moving up,
	// i.e. when leaving the ghost house.
	CapGhostExit
	// CapPellet marks tiles that carry something to eat.
	CapPellet
)

// Caps is a capability set.
type Caps uint8

// Has reports whether the set contains c.
func (s Caps) Has(c Cap) bool {
	return uint8(s)&uint8(c) != 0
}

const walkable = Caps(CapPacman) | Caps(CapGhost) | Caps(CapDeadGhost)

// Caps returns the capability set of the tile kind. Every legality rule in
// the simulation is derived from this table.
func (t Tile) Caps() Caps {
	switch t {
	case Path:
		return walkable
	case Dot, PowerPellet:
		return walkable | Caps(CapPellet)
	case Door:
		return Caps(CapDeadGhost) | Caps(CapGhostExit)
	default:
		return 0
	}
}

// Mover identifies which legality rules apply to an agent.
type Mover int

const (
	MoverPacman Mover = iota
	MoverGhost
	MoverDeadGhost
)

// Allows reports whether a mover travelling in direction d may enter a tile
// with this capability set.
func (s Caps) Allows(m Mover, d Dir) bool {
	switch m {
	case MoverPacman:
		return s.Has(CapPacman)
	case MoverGhost:
		return s.Has(CapGhost) || (s.Has(CapGhostExit) && d == DirUp)
	case MoverDeadGhost:
		return s.Has(CapDeadGhost)
	default:
		return false
	}
}
