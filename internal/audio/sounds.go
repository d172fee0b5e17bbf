package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"
)

const (
	dotDuration     = 60 * time.Millisecond
	powerDuration   = 250 * time.Millisecond
	captureDuration = 200 * time.Millisecond
	deathDuration   = 800 * time.Millisecond
	chimeNote       = 90 * time.Millisecond

	attack  = 5 * time.Millisecond
	release = 30 * time.Millisecond
)

// Sound builds the streamer for an event kind, scaled by vol. Unknown
// kinds return nil.
func Sound(kind sim.EventKind, vol float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch kind {
	case sim.EventDotEaten:
		s = tone(300, 500, dotDuration, WaveTriangle, rate)
	case sim.EventPowerEaten:
		s = tone(600, 800, powerDuration, WaveSine, rate)
	case sim.EventGhostCaptured:
		s = newVolume(tone(800, 800, captureDuration, WaveSquare, rate), 0.5)
	case sim.EventPacmanDied:
		s = NewEnvelope(NewSweep(400, 100, deathDuration, WaveSaw, rate), deathDuration, attack, 200*time.Millisecond, rate)
	case sim.EventLevelCleared:
		s = beep.Seq(
			tone(523.25, 523.25, chimeNote, WaveSine, rate),
			tone(659.25, 659.25, chimeNote, WaveSine, rate),
			tone(783.99, 783.99, chimeNote, WaveSine, rate),
			tone(1046.5, 1046.5, 2*chimeNote, WaveSine, rate),
		)
	default:
		return nil
	}
	return newVolume(s, vol)
}

func tone(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewSweep(from, to, d, wave, rate), d, attack, release, rate)
}
