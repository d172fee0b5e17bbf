package feed

import (
	"encoding/json"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"
)

// Message types.
const (
	TypeHello = "hello" // first message on a connection
	TypeFrame = "frame"
)

// Message is one JSON document pushed to spectators.
type Message struct {
	Type   string      `json:"type"`
	Client string      `json:"client,omitempty"` // hello only
	Tick   uint64      `json:"tick"`
	Frame  *sim.Frame  `json:"frame,omitempty"`
	Layout []string    `json:"layout,omitempty"`
	Events []sim.Event `json:"events,omitempty"`
}

// newFrameMessage builds a frame message. The layout carries the tiles,
// which Frame does not serialise itself.
func newFrameMessage(f sim.Frame, events []sim.Event) Message {
	return Message{
		Type:   TypeFrame,
		Tick:   f.Tick,
		Frame:  &f,
		Layout: f.Layout(),
		Events: events,
	}
}

func encode(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}
