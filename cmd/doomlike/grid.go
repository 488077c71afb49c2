package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"doomlike/internal/level"
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Print the collision grid",
	Long: `Load the level the same way the game does and print its occupancy
grid, one row per z, '#' for wall cells and '.' for free cells.

Examples:
  doomlike grid
  doomlike grid --map maps/level1.txt`,
	Args: cobra.NoArgs,
	RunE: runGrid,
}

func runGrid(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	m := level.Load(cfg.Map.Path, logger)
	w, h := m.Size()
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d sectors, %d walls, %dx%d grid\n",
		cfg.Map.Path, len(m.Sectors()), m.WallCount(), w, h)
	fmt.Fprint(cmd.OutOrStdout(), m)
	return nil
}
