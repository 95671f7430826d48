package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game. Without --difficulty a menu lists the six levels.

Controls:
  Up/Down, Enter   - Pick a difficulty
  Space/Up/W       - Flap (restart after game over)
  R                - Restart after game over
  B/Esc            - Back to the difficulty menu after game over
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Examples:
  flappy play
  flappy play --difficulty expert
  flappy play --difficulty 2 --seed 42
  flappy play --config ./my-flappy.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Start directly at a difficulty (name or 1-6)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var preset *flappy.Difficulty
	if flagDifficulty != "" {
		d, parseErr := flappy.ParseDifficulty(flagDifficulty)
		if parseErr != nil {
			return parseErr
		}
		preset = &d
	}

	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	rt.TickRate = cfg.Timing.TickRate
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}

	// Continue without storage; the game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run journal", "path", flagDBPath, "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	logger.Debug("starting", "width", rt.ScreenW, "height", rt.ScreenH, "tick_rate", rt.TickRate, "seed", rt.Seed)

	m, err := tui.Run(tui.Options{
		Game:       cfg,
		Runtime:    rt,
		Store:      store,
		Logger:     logger,
		Difficulty: preset,
	})
	if err != nil {
		return err
	}

	if id := m.LastRunID(); id != 0 {
		fmt.Printf("Last run journaled as #%d. Verify it with 'flappy replay %d'.\n", id, id)
	}
	return nil
}
