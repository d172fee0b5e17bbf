package audio

import (
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"
)

// recorder replaces the speaker so tests run without an audio device.
type recorder struct {
	mu    sync.Mutex
	count int
	block chan struct{}
}

func (r *recorder) play(beep.Streamer) {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	r.count++
	r.mu.Unlock()
}

func (r *recorder) played() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

func startRecording(t *testing.T, r *recorder) *Player {
	t.Helper()
	p := NewPlayer(config.AudioConfig{Enabled: true, Volume: 0.5}, nil)
	p.play = r.play
	p.mu.Lock()
	p.run()
	p.mu.Unlock()
	t.Cleanup(p.Close)
	return p
}

func TestPlayerGracefulWithoutStart(t *testing.T) {
	p := NewPlayer(config.AudioConfig{Enabled: true, Volume: 1}, nil)

	assert.False(t, p.Enabled())
	p.Notify(sim.Event{Kind: sim.EventDotEaten})
	p.Close()
	assert.Zero(t, p.Dropped())
}

func TestDisabledPlayerNeverOpensDevice(t *testing.T) {
	for _, cfg := range []config.AudioConfig{
		{Enabled: false, Volume: 1},
		{Enabled: true, Volume: 0},
	} {
		p := NewPlayer(cfg, nil)
		require.NoError(t, p.Start())
		assert.False(t, p.Enabled())
		p.Notify(sim.Event{Kind: sim.EventPacmanDied})
		p.Close()
	}
}

func TestPlayerPlaysEvents(t *testing.T) {
	r := &recorder{}
	p := startRecording(t, r)
	require.True(t, p.Enabled())

	p.Notify(sim.Event{Kind: sim.EventDotEaten})
	p.Notify(sim.Event{Kind: sim.EventGhostCaptured})
	p.Notify(sim.Event{Kind: sim.EventKind(99)})

	assert.Eventually(t, func() bool { return r.played() == 2 }, time.Second, 5*time.Millisecond)
}

func TestNotifyDoesNotBlockWhenQueueIsFull(t *testing.T) {
	r := &recorder{block: make(chan struct{})}
	p := startRecording(t, r)
	t.Cleanup(func() { close(r.block) })

	done := make(chan struct{})
	go func() {
		for range queueSize * 4 {
			p.Notify(sim.Event{Kind: sim.EventDotEaten})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a stalled consumer")
	}
	assert.NotZero(t, p.Dropped())
}
