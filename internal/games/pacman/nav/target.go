package nav

import "github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"

// TargetKind enumerates the goals a search can look for.
type TargetKind uint8

const (
	KindDot TargetKind = iota
	KindPower
	KindPacman
	KindHome
	KindPos
)

func (k TargetKind) String() string {
	switch k {
	case KindDot:
		return "dot"
	case KindPower:
		return "power"
	case KindPacman:
		return "pacman"
	case KindHome:
		return "home"
	case KindPos:
		return "pos"
	default:
		return "unknown"
	}
}

// Target is a search goal. Tile is only meaningful for the kinds that name a
// coordinate (pacman, home, pos).
type Target struct {
	Kind TargetKind
	Tile maze.Coord
}

// Dot matches any tile holding a dot.
func Dot() Target { return Target{Kind: KindDot} }

// Power matches any tile holding a power pellet.
func Power() Target { return Target{Kind: KindPower} }

// Pacman matches the tile Pac-Man currently occupies.
func Pacman(c maze.Coord) Target { return Target{Kind: KindPacman, Tile: c} }

// Home matches the ghost home tile.
func Home(c maze.Coord) Target { return Target{Kind: KindHome, Tile: c} }

// Pos matches an explicit coordinate.
func Pos(c maze.Coord) Target { return Target{Kind: KindPos, Tile: c} }

// Match reports whether tile c satisfies the target on grid g.
func (t Target) Match(g *maze.Grid, c maze.Coord) bool {
	switch t.Kind {
	case KindDot:
		return g.At(c) == maze.Dot
	case KindPower:
		return g.At(c) == maze.PowerPellet
	case KindPacman, KindHome, KindPos:
		return c == t.Tile
	default:
		return false
	}
}

func (t Target) String() string {
	switch t.Kind {
	case KindPacman, KindHome, KindPos:
		return t.Kind.String() + t.Tile.String()
	default:
		return t.Kind.String()
	}
}
