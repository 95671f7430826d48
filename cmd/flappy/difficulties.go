package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

var difficultiesCmd = &cobra.Command{
	Use:     "difficulties",
	Aliases: []string{"list"},
	Short:   "List difficulty levels",
	Long:    `Shows the six difficulty levels and the gravity each one applies per tick.`,
	Args:    cobra.NoArgs,
	RunE:    runDifficulties,
}

func runDifficulties(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Println("Difficulty levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-8s  %s\n", "#", "Name", "Gravity")
	fmt.Printf("  %-3s  %-8s  %s\n", "-", "----", "-------")
	for _, d := range flappy.Difficulties() {
		fmt.Printf("  %-3d  %-8s  %.2f\n", int(d)+1, d.Title(), cfg.Physics.Gravity.At(int(d)))
	}

	fmt.Println()
	fmt.Println("Run 'flappy play --difficulty <name>' to start at a level.")
	return nil
}
