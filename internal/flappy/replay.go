package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// MaxReplayTicks bounds the length of a session Replay will re-simulate,
// about 23 hours at 50 ticks per second.
const MaxReplayTicks = 1 << 22

// Journal records one session: enough to re-simulate it exactly.
type Journal struct {
	Seed       int64 // Gap placement seed of the session
	Difficulty Difficulty
	Flaps      []int // Tick counts at which each flap was applied, non-decreasing
	Score      int
	Ticks      int
	Ended      bool // Session ended in a collision
}

// Journal returns the record of the current session.
func (g *Game) Journal() Journal {
	flaps := make([]int, len(g.flaps))
	copy(flaps, g.flaps)
	return Journal{
		Seed:       g.sessionSeed,
		Difficulty: g.difficulty,
		Flaps:      flaps,
		Score:      g.score,
		Ticks:      g.ticks,
		Ended:      g.phase == PhaseGameOver,
	}
}

// Validate checks the journal is internally consistent.
func (j Journal) Validate() error {
	if !j.Difficulty.Valid() {
		return fmt.Errorf("flappy: journal has invalid difficulty %d", int(j.Difficulty))
	}
	if j.Ticks < 0 || j.Score < 0 {
		return fmt.Errorf("flappy: journal has negative ticks (%d) or score (%d)", j.Ticks, j.Score)
	}
	if j.Ticks > MaxReplayTicks {
		return fmt.Errorf("flappy: journal tick count %d exceeds limit %d", j.Ticks, MaxReplayTicks)
	}
	prev := 0
	for i, f := range j.Flaps {
		if f < prev || f > j.Ticks {
			return fmt.Errorf("flappy: journal flap %d at tick %d is out of order or range", i, f)
		}
		prev = f
	}
	return nil
}

// ReplayResult reports what a re-simulated session produced.
type ReplayResult struct {
	Score int
	Ticks int
	Ended bool
	Match bool // Score, ticks and ending all equal the journal's
}

// Replay re-runs a journaled session headlessly under cfg.
// Flaps are applied before the tick whose count they record, exactly as the
// live game applied them between ticks. The run stops at game over or after
// the journal's tick count.
func Replay(cfg config.Config, j Journal) (ReplayResult, error) {
	if err := j.Validate(); err != nil {
		return ReplayResult{}, err
	}

	g := New(cfg, j.Seed)
	g.begin(j.Difficulty, j.Seed)

	next := 0
	for g.Phase() == PhasePlaying && g.Ticks() < j.Ticks {
		for next < len(j.Flaps) && j.Flaps[next] == g.Ticks() {
			g.OnFlap()
			next++
		}
		g.OnTick()
	}
	// Flaps recorded after the final tick still happened live.
	for next < len(j.Flaps) && g.Phase() == PhasePlaying {
		g.OnFlap()
		next++
	}

	res := ReplayResult{
		Score: g.Score(),
		Ticks: g.Ticks(),
		Ended: g.Phase() == PhaseGameOver,
	}
	res.Match = res.Score == j.Score && res.Ticks == j.Ticks && res.Ended == j.Ended
	return res, nil
}
