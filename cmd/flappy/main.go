// flappy is a terminal Flappy Bird-style game with a deterministic engine.
//
// Usage:
//
//	flappy play               - Play (difficulty menu, or --difficulty to skip it)
//	flappy difficulties       - List difficulty levels and their gravity
//	flappy runs               - List journaled runs (--browse for a TUI table)
//	flappy replay <run-id>    - Re-simulate a journaled run headlessly
//	flappy trajectory         - Plot the body's height over time
//
// Global flags:
//
//	--config <path>     - Game config file (YAML or TOML)
//	--fps <rate>        - Tick rate override (default: from config, 50)
//	--seed <value>      - RNG seed for reproducible gameplay
//	--db <path>         - Run journal path (default: ~/.flappy/runs.db)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - guide a falling bird through scrolling pipes",
	Long: `Flappy is a terminal game: flap to keep the bird airborne and pass
through the gaps between pipes. Six difficulties change how hard gravity pulls.

Every finished or quit run is journaled so it can be replayed and verified.

Examples:
  flappy play
  flappy play --difficulty hard
  flappy difficulties
  flappy runs --limit 5
  flappy replay 12
  flappy trajectory --difficulty insane --flap-every 8`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a game config file (.yaml or .toml)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to the run journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(difficultiesCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(trajectoryCmd)
}

// loadConfig loads the game config honoring --config and --fps.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	return cfg, nil
}
