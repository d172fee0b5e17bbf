// pacman is a terminal Pac-Man: a pursuit simulation on a tile maze that
// plays itself until a direction key takes over.
//
// Usage:
//
//	pacman play              - Play in the terminal
//	pacman serve             - Start SSH server for remote play
//	pacman watch             - Stream the attract mode to WebSocket spectators
//	pacman sim               - Run the simulation headless and print a summary
//	pacman layout            - Print the maze
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - easy, normal or hard
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pac-Man in your terminal",
	Long: `A tile-grid Pac-Man. Pac-Man plays itself in attract mode until you
press a direction key; four ghosts chase him with their own policies.

Available commands:
  play     - Play in the terminal
  serve    - Start SSH server for remote play
  watch    - Stream the attract mode over WebSocket
  sim      - Run headless and report what happened
  layout   - Print the maze

Examples:
  pacman play
  pacman play --difficulty hard
  pacman serve --ssh :2222
  pacman watch --addr :8080
  pacman sim --ticks 20000 --seed 42 --json`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(layoutCmd)
}
