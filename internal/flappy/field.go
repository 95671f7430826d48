package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// EventKind identifies something that happened to a pipe during a tick.
type EventKind int

const (
	EventScored   EventKind = iota + 1 // Body cleared the pipe's trailing edge
	EventRetired                       // Pipe scrolled off the left edge and was removed
	EventCollided                      // Body hit the pipe; traversal stopped
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventScored:
		return "scored"
	case EventRetired:
		return "retired"
	case EventCollided:
		return "collided"
	default:
		return "unknown"
	}
}

// Event is emitted by Field.Tick.
type Event struct {
	Kind   EventKind
	PipeID int
}

// Field owns the live pipes, ordered oldest (leftmost) first.
type Field struct {
	pipes  []Pipe
	rng    *rand.Rand
	nextID int

	width  float64
	height float64
	obs    config.ObstacleConfig
}

// NewField creates an empty field whose gap placement is driven by seed.
func NewField(cfg config.Config, seed int64) *Field {
	return &Field{
		pipes:  make([]Pipe, 0, 4),
		rng:    rand.New(rand.NewSource(seed)),
		width:  cfg.Field.Width,
		height: cfg.Field.Height,
		obs:    cfg.Obstacles,
	}
}

// Reseed resets the gap placement RNG.
func (f *Field) Reseed(seed int64) {
	f.rng = rand.New(rand.NewSource(seed))
}

// Clear removes every pipe.
func (f *Field) Clear() {
	f.pipes = f.pipes[:0]
}

// Len returns the number of live pipes.
func (f *Field) Len() int {
	return len(f.pipes)
}

// Pipes returns a copy of the live pipes, oldest first.
func (f *Field) Pipes() []Pipe {
	out := make([]Pipe, len(f.pipes))
	copy(out, f.pipes)
	return out
}

// MaybeSpawn appends a new pipe at the right edge if the field is empty or
// the newest pipe has moved left of the spawn threshold. Reports whether it spawned.
func (f *Field) MaybeSpawn() bool {
	if len(f.pipes) > 0 && f.pipes[len(f.pipes)-1].X >= f.obs.SpawnThreshold {
		return false
	}
	f.spawn()
	return true
}

// spawn creates a pipe at the right edge with a constant-size gap whose
// centre is drawn uniformly between the margins.
func (f *Field) spawn() {
	half := f.obs.GapSize / 2
	lo := f.obs.GapMargin + half
	hi := f.height - f.obs.GapMargin - half

	center := lo
	if hi > lo {
		center = lo + f.rng.Float64()*(hi-lo)
	}

	f.nextID++
	f.pipes = append(f.pipes, Pipe{
		ID:        f.nextID,
		X:         f.width,
		GapTop:    center - half,
		GapBottom: center + half,
		Width:     f.obs.Width,
	})
}

// Tick advances every pipe by speed, oldest first. For each pipe it asks hit
// whether the body collides; a collision emits EventCollided and stops the
// traversal, leaving later pipes unmoved. Otherwise a pipe whose trailing edge
// is left of bodyX is scored once, and a pipe left of the retire threshold is
// removed.
func (f *Field) Tick(speed, bodyX float64, hit func(Pipe) bool) []Event {
	var events []Event

	kept := f.pipes[:0]
	for i := range f.pipes {
		p := f.pipes[i]
		p.Advance(speed)

		if hit != nil && hit(p) {
			events = append(events, Event{Kind: EventCollided, PipeID: p.ID})
			kept = append(kept, p)
			kept = append(kept, f.pipes[i+1:]...)
			f.pipes = kept
			return events
		}

		if p.Right() < bodyX && p.markPassed() {
			events = append(events, Event{Kind: EventScored, PipeID: p.ID})
		}

		if p.X < f.obs.RetireThreshold {
			events = append(events, Event{Kind: EventRetired, PipeID: p.ID})
			continue
		}
		kept = append(kept, p)
	}
	f.pipes = kept

	return events
}
