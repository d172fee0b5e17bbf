// Package audio synthesises the game's sound effects with beep and plays
// them in response to simulation events.
package audio

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"
)

const (
	sampleRate = beep.SampleRate(48000)
	queueSize  = 32
)

// Player turns simulation events into sounds. It implements sim.Sink:
// Notify never blocks, and events arriving while the queue is full are
// dropped.
type Player struct {
	mu          sync.Mutex
	volume      float64
	enabled     bool
	initialized bool
	device      bool // speaker opened
	mixer       *beep.Mixer
	log         *log.Logger

	queue   chan sim.EventKind
	done    chan struct{}
	wg      sync.WaitGroup
	dropped atomic.Uint64

	// play hands a finished streamer to the output.
	play func(beep.Streamer)
}

// NewPlayer creates a player for cfg. Nothing is played until Start.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Player{
		volume:  cfg.Volume,
		enabled: cfg.Enabled && cfg.Volume > 0,
		mixer:   &beep.Mixer{},
		log:     logger,
		queue:   make(chan sim.EventKind, queueSize),
		done:    make(chan struct{}),
	}
	p.play = p.mix
	return p
}

// Start opens the audio device and begins consuming events. A disabled
// player starts nothing. Failing to open the device is returned; the
// player then stays silent and Notify remains safe to call.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.enabled = false
		return err
	}
	speaker.Play(p.mixer)

	p.device = true
	p.run()
	return nil
}

// run must be called with p.mu held.
func (p *Player) run() {
	p.initialized = true
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		for {
			select {
			case <-p.done:
				return
			case kind := <-p.queue:
				if s := Sound(kind, p.volume, sampleRate); s != nil {
					p.play(s)
				}
			}
		}
	}()
}

func (p *Player) mix(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Notify queues the sound for e.
func (p *Player) Notify(e sim.Event) {
	if !p.Enabled() {
		return
	}
	select {
	case p.queue <- e.Kind:
	default:
		if n := p.dropped.Add(1); n%100 == 1 {
			p.log.Debug("sound queue full", "kind", e.Kind, "dropped", n)
		}
	}
}

// Enabled reports whether sounds are being played.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled && p.initialized
}

// Dropped returns the number of events discarded because the queue was full.
func (p *Player) Dropped() uint64 {
	return p.dropped.Load()
}

// Close stops the consumer and silences the mixer.
func (p *Player) Close() {
	p.mu.Lock()
	if !p.initialized {
		p.mu.Unlock()
		return
	}
	p.initialized = false
	device := p.device
	p.mu.Unlock()

	close(p.done)
	p.wg.Wait()

	if device {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
}
