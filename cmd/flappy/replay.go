package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Re-simulate a journaled run",
	Long: `Re-run a journaled session headlessly from its seed and recorded flaps,
and check that it reaches the same score, tick count and ending.

The replay uses the current config; a run recorded under different tunables
will usually diverge.

Examples:
  flappy replay 12
  flappy replay 12 --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id %q: %w", args[0], err)
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.Run(id)
	if err != nil {
		return err
	}
	j := run.Journal
	logger.Debug("replaying", "id", id, "difficulty", j.Difficulty, "seed", j.Seed, "flaps", len(j.Flaps))

	res, err := flappy.Replay(cfg, j)
	if err != nil {
		return err
	}

	fmt.Printf("Run #%d (%s)\n", run.ID, j.Difficulty.Title())
	fmt.Printf("  recorded: score %d, %d ticks, %s\n", j.Score, j.Ticks, ending(j.Ended))
	fmt.Printf("  replayed: score %d, %d ticks, %s\n", res.Score, res.Ticks, ending(res.Ended))

	if !res.Match {
		logger.Warn("replay diverged", "id", id)
		return fmt.Errorf("run %d does not reproduce", id)
	}
	fmt.Println("  verdict:  reproduces exactly")
	return nil
}

func ending(crashed bool) string {
	if crashed {
		return "crashed"
	}
	return "quit"
}
