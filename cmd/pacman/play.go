package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/audio"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
)

var (
	flagNoSound bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game. Pac-Man plays by himself until the first direction
key; from then on he only turns when you tell him to.

Controls:
  Arrows/WASD/HJKL  - Move
  P/Esc             - Pause
  R                 - Restart (back to attract mode)
  ?                 - Toggle help
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Examples:
  pacman play
  pacman play --difficulty easy
  pacman play --no-sound
  pacman play --config ./my-maze.yaml --log-file pacman.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable sound effects")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is busy drawing)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out, closeLog, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	logger, err := newLogger(out, "pacman")
	if err != nil {
		return err
	}

	if flagNoSound {
		cfg.Audio.Enabled = false
	}
	player := audio.NewPlayer(cfg.Audio, logger)
	if err := player.Start(); err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	defer player.Close()

	game, err := pacman.New(cfg, pacman.WithSink(player), pacman.WithLogger(logger))
	if err != nil {
		return err
	}

	width, height := 80, 40
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	logger.Info("starting", "difficulty", flagDifficulty, "sound", player.Enabled())
	return tui.Run(game, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed(),
	})
}
