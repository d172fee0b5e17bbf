package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
)

// EventKind classifies something that happened during a tick.
type EventKind int

const (
	EventDotEaten EventKind = iota
	EventPowerEaten
	EventGhostCaptured
	EventPacmanDied
	EventLevelCleared
)

func (k EventKind) String() string {
	switch k {
	case EventDotEaten:
		return "dot"
	case EventPowerEaten:
		return "power"
	case EventGhostCaptured:
		return "ghost_captured"
	case EventPacmanDied:
		return "pacman_died"
	case EventLevelCleared:
		return "level_cleared"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *EventKind) UnmarshalText(text []byte) error {
	for v := EventDotEaten; v <= EventLevelCleared; v++ {
		if v.String() == string(text) {
			*k = v
			return nil
		}
	}
	return fmt.Errorf("sim: unknown event kind %q", text)
}

// Event is emitted to the Sink and returned from Step.
type Event struct {
	Kind  EventKind  `json:"kind"`
	Tick  uint64     `json:"tick"`
	Tile  maze.Coord `json:"tile"`
	Ghost GhostType  `json:"ghost"` // meaningful for EventGhostCaptured only
}

// Sink receives simulation events, typically to play sounds.
// Notify is called from inside Step and must not block.
type Sink interface {
	Notify(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

// Notify calls f(e).
func (f SinkFunc) Notify(e Event) { f(e) }

type nopSink struct{}

func (nopSink) Notify(Event) {}
