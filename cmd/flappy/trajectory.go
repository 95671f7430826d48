package main

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

var (
	flagTrajDifficulty string
	flagTrajTicks      int
	flagTrajFlapEvery  int
)

var trajectoryCmd = &cobra.Command{
	Use:   "trajectory",
	Short: "Plot the bird's height over time",
	Long: `Integrate the bird alone, with no pipes, and draw its height per tick. Use --flap-every to flap at a fixed cadence and
compare how each difficulty's gravity shapes the arc.

Examples:
  flappy trajectory
  flappy trajectory --difficulty insane --flap-every 6
  flappy trajectory --ticks 300 --flap-every 15`,
	Args: cobra.NoArgs,
	RunE: runTrajectory,
}

func init() {
	trajectoryCmd.Flags().StringVar(&flagTrajDifficulty, "difficulty", "normal", "Difficulty (name or 1-6)")
	trajectoryCmd.Flags().IntVar(&flagTrajTicks, "ticks", 120, "Number of ticks to simulate")
	trajectoryCmd.Flags().IntVar(&flagTrajFlapEvery, "flap-every", 0, "Flap every N ticks (0 = never)")
}

func runTrajectory(cmd *cobra.Command, args []string) error {
	d, err := flappy.ParseDifficulty(flagTrajDifficulty)
	if err != nil {
		return err
	}
	if flagTrajTicks < 2 {
		return fmt.Errorf("--ticks must be at least 2, got %d", flagTrajTicks)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	heights := trajectory(cfg.Body.X, cfg.Body.Y, cfg.Field.Height, cfg.Physics.Gravity.At(int(d)), cfg.Physics.Lift, flagTrajTicks, flagTrajFlapEvery)

	caption := fmt.Sprintf("height above floor, %s (g=%.2f)", d.Title(), cfg.Physics.Gravity.At(int(d)))
	if flagTrajFlapEvery > 0 {
		caption += fmt.Sprintf(", flap every %d ticks", flagTrajFlapEvery)
	}
	graph := asciigraph.Plot(heights,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	return nil
}

// trajectory integrates a body for ticks steps and returns its height above
// the floor after each one. Screen y grows downward, so height is fieldH - y.
func trajectory(x, y, fieldH, gravity, lift float64, ticks, flapEvery int) []float64 {
	body := flappy.NewBody(x, y, 0, 0, gravity, lift)
	heights := make([]float64, 0, ticks)
	for i := 0; i < ticks; i++ {
		if flapEvery > 0 && i%flapEvery == 0 {
			body.Flap()
		}
		body.Integrate()
		heights = append(heights, fieldH-body.Y)
	}
	return heights
}
