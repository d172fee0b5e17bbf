package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"
)

func TestSimulateIsDeterministic(t *testing.T) {
	params, grid, err := pacman.Build(config.DefaultPacmanConfig())
	require.NoError(t, err)

	var events []sim.Event
	a := simulate(grid.Clone(), params, 42, 2000, func(e sim.Event) { events = append(events, e) })
	b := simulate(grid.Clone(), params, 42, 2000, func(sim.Event) {})

	assert.Equal(t, uint64(2000), a.Ticks)
	assert.Equal(t, a.Counts, b.Counts)
	assert.Equal(t, a.Deaths, b.Deaths)
	assert.Equal(t, a.Pellets, b.Pellets)
	assert.Positive(t, a.Counts[sim.EventDotEaten])

	total := 0
	for _, n := range a.Counts {
		total += n
	}
	assert.Len(t, events, total)
}

func TestEventWriterEmitsJSONLines(t *testing.T) {
	var buf bytes.Buffer
	each := eventWriter(&buf, true)
	each(sim.Event{Kind: sim.EventGhostCaptured, Tick: 9, Ghost: sim.Inky})

	assert.JSONEq(t, `{"kind":"ghost_captured","tick":9,"tile":{"x":0,"y":0},"ghost":"inky"}`, buf.String())

	buf.Reset()
	eventWriter(&buf, false)(sim.Event{})
	assert.Empty(t, buf.String())
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, summary{Seed: 1, Ticks: 10, Counts: map[sim.EventKind]int{sim.EventDotEaten: 3}})

	out := buf.String()
	assert.Contains(t, out, "seed          1")
	assert.Contains(t, out, "dot           3")
	assert.Contains(t, out, "pacman_died   0")
}
