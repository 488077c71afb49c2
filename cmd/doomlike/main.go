// doomlike is a small first-person walker over an OpenGL renderer.
//
// Usage:
//
//	doomlike               - Open the window and play
//	doomlike grid          - Print the level's collision grid
//
// Global flags:
//
//	--config <path> - Config YAML (default search: ~/.doomlike, ./configs, built-in)
//	--map <path>    - Level file, overrides map.path
//	--debug         - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"doomlike/internal/config"
	"doomlike/internal/game"
)

var (
	// Global flags
	flagConfig string
	flagMap    string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "doomlike",
	Short: "First-person walk around a test room",
	Long: `doomlike opens a window and drops you into a textured test room.

Controls:
  W/A/S/D  - Move
  Mouse    - Look
  Esc      - Quit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagMap, "map", "", "Path to level file (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(gridCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "doomlike",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig applies the config file and the --map override.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagMap != "" {
		cfg.Map.Path = flagMap
	}
	return cfg, nil
}

func runGame(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return game.Run(cfg, logger)
}
