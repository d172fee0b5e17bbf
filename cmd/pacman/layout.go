package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maze"
)

var flagPlain bool

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the maze",
	Long: `Print the maze the game would run on, after --config is applied.

Legend:
  #  wall
  .  dot
  o  power pellet
  -  ghost house door
     empty

Examples:
  pacman layout
  pacman layout --config ./my-maze.yaml --plain > maze.txt`,
	Args: cobra.NoArgs,
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print without colors or statistics")
}

var tileStyles = map[maze.Tile]lipgloss.Style{
	maze.Wall:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	maze.Dot:         lipgloss.NewStyle().Foreground(lipgloss.Color("223")),
	maze.PowerPellet: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	maze.Door:        lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
}

func runLayout(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	_, grid, err := pacman.Build(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagPlain {
		fmt.Fprintln(out, grid.String())
		return nil
	}

	for y := range grid.Rows() {
		for x := range grid.Cols() {
			t := grid.At(maze.C(x, y))
			s := string(t.Rune())
			if style, ok := tileStyles[t]; ok {
				s = style.Render(s)
			}
			fmt.Fprint(out, s)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "\n%dx%d  dots %d  power %d\n",
		grid.Cols(), grid.Rows(), grid.Count(maze.Dot), grid.Count(maze.PowerPellet))
	return nil
}
