package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Snapshot captures everything the front end needs to draw a frame.
type Snapshot struct {
	Tick       int
	Phase      Phase
	Difficulty Difficulty
	Score      int
	Body       core.Rect
	BodyVel    float64
	Pipes      []Pipe
	FieldW     float64
	FieldH     float64
}

// Snapshot returns the current game snapshot. The pipe slice is a copy.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.ticks,
		Phase:      g.phase,
		Difficulty: g.difficulty,
		Score:      g.score,
		Body:       g.body.Rect(),
		BodyVel:    g.body.Vel,
		Pipes:      g.field.Pipes(),
		FieldW:     g.cfg.Field.Width,
		FieldH:     g.cfg.Field.Height,
	}
}
