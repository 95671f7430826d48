// Package flappy implements the simulation engine of a Flappy Bird-style game.
// A falling body must pass through the gaps of pipes scrolling in from the
// right. The engine is driven by a fixed-rate tick and discrete input events
// delivered between ticks; it never renders and never blocks.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Phase is the state of the game state machine.
type Phase int

const (
	PhaseMenu     Phase = iota // Waiting for a difficulty selection
	PhasePlaying               // Ticks advance the simulation
	PhaseGameOver              // Frozen after a collision until restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// TickResult is returned by OnTick.
type TickResult struct {
	Events   []Event
	Scored   int  // Pipes cleared this tick
	Collided bool // Session ended this tick
	Phase    Phase
	Score    int
}

// Game is the state machine owning the body, the pipe field and the score.
// It is not safe for concurrent use: the host must deliver ticks and input
// from a single goroutine.
type Game struct {
	cfg        config.Config
	phase      Phase
	difficulty Difficulty
	body       Body
	field      *Field
	score      int
	ticks      int

	seeds       *rand.Rand // Draws one gap-placement seed per session
	sessionSeed int64
	flaps       []int // Tick counts at which flaps were applied this session
}

// New creates a game in the menu phase. seed drives pipe placement for every
// session this game runs.
func New(cfg config.Config, seed int64) *Game {
	return &Game{
		cfg:   cfg,
		phase: PhaseMenu,
		field: NewField(cfg, seed),
		seeds: rand.New(rand.NewSource(seed)),
	}
}

// OnSelectDifficulty starts a session at the given level.
// It is a no-op outside the menu or for an unknown level.
func (g *Game) OnSelectDifficulty(d Difficulty) bool {
	if g.phase != PhaseMenu || !d.Valid() {
		return false
	}
	g.begin(d, g.seeds.Int63())
	return true
}

// begin starts a fresh session with a new body and an empty field.
func (g *Game) begin(d Difficulty, seed int64) {
	g.difficulty = d
	g.body = NewBody(
		g.cfg.Body.X, g.cfg.Body.Y,
		g.cfg.Body.Width, g.cfg.Body.Height,
		g.cfg.Physics.Gravity.At(int(d)),
		g.cfg.Physics.Lift,
	)
	g.startSession(seed)
}

func (g *Game) startSession(seed int64) {
	g.field.Clear()
	g.field.Reseed(seed)
	g.sessionSeed = seed
	g.score = 0
	g.ticks = 0
	g.flaps = nil
	g.phase = PhasePlaying
}

// OnFlap handles the jump input: a flap while playing, a restart after game
// over, nothing in the menu.
func (g *Game) OnFlap() bool {
	switch g.phase {
	case PhasePlaying:
		g.body.Flap()
		g.flaps = append(g.flaps, g.ticks)
		return true
	case PhaseGameOver:
		return g.Restart()
	default:
		return false
	}
}

// Restart begins a new session after game over, keeping the difficulty.
// The field is emptied, the body reset and the score zeroed.
func (g *Game) Restart() bool {
	if g.phase != PhaseGameOver {
		return false
	}
	g.body.Reset()
	g.startSession(g.seeds.Int63())
	return true
}

// Back returns to the menu after game over so a new difficulty can be chosen.
func (g *Game) Back() bool {
	if g.phase != PhaseGameOver {
		return false
	}
	g.field.Clear()
	g.phase = PhaseMenu
	return true
}

// OnTick advances the simulation by one tick. Outside the playing phase it
// changes nothing.
//
// Order: integrate the body, maybe spawn a pipe, then walk the pipes oldest
// first (advance, collide, score, retire). A collision ends the session at
// once; the colliding pipe is never scored.
func (g *Game) OnTick() TickResult {
	if g.phase != PhasePlaying {
		return TickResult{Phase: g.phase, Score: g.score}
	}

	g.ticks++
	g.body.Integrate()
	g.field.MaybeSpawn()

	bodyRect := g.body.Rect()
	fieldH := g.cfg.Field.Height
	events := g.field.Tick(g.cfg.Physics.ScrollSpeed, g.body.X(), func(p Pipe) bool {
		return Collides(bodyRect, p, fieldH)
	})

	result := TickResult{Events: events}
	for _, ev := range events {
		switch ev.Kind {
		case EventScored:
			result.Scored++
		case EventCollided:
			result.Collided = true
		}
	}
	g.score += result.Scored

	if !result.Collided && g.cfg.Field.SolidBounds && OutOfBounds(bodyRect, fieldH) {
		result.Collided = true
	}
	if result.Collided {
		g.phase = PhaseGameOver
	}

	result.Phase = g.phase
	result.Score = g.score
	return result
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current session's score.
func (g *Game) Score() int {
	return g.score
}

// Difficulty returns the selected difficulty. Before the first selection it is Easy.
func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}

// Ticks returns the number of ticks simulated in the current session.
func (g *Game) Ticks() int {
	return g.ticks
}

// Body returns a copy of the body.
func (g *Game) Body() Body {
	return g.body
}

// Pipes returns a copy of the live pipes, oldest first.
func (g *Game) Pipes() []Pipe {
	return g.field.Pipes()
}

// Config returns the tunables the game was created with.
func (g *Game) Config() config.Config {
	return g.cfg
}
