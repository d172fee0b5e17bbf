package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/feed"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"
)

var (
	flagWatchAddr string
	flagEvery     int
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream the attract mode to WebSocket spectators",
	Long: `Run one self-playing game and publish its frames as JSON.

Endpoints:
  /ws      - WebSocket stream: a hello message, then frame messages
  /frame   - the latest frame message
  /health  - liveness

Spectators cannot steer; every connection sees the same game.

Examples:
  pacman watch
  pacman watch --addr :9000 --every 4`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagWatchAddr, "addr", ":8080", "HTTP listen address")
	watchCmd.Flags().IntVar(&flagEvery, "every", 2, "Ticks between broadcast frames")
}

func runWatch(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "pacman-feed")
	if err != nil {
		return err
	}

	params, grid, err := pacman.Build(cfg)
	if err != nil {
		return err
	}
	world := sim.New(grid, params, seed(), sim.WithLogger(logger))

	server := feed.NewServer(world, feed.Config{
		TickRate:       flagFPS,
		BroadcastEvery: flagEvery,
		Logger:         logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Streaming on ws://localhost%s/ws\n", flagWatchAddr)
	return server.ListenAndServe(ctx, flagWatchAddr)
}
