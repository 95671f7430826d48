package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Pipe is a vertical obstacle with a gap for the body to pass through.
type Pipe struct {
	ID        int     // Spawn serial, unique within a field
	X         float64 // Horizontal position (left edge)
	GapTop    float64 // Y where the gap starts
	GapBottom float64 // Y where the gap ends; always greater than GapTop
	Width     float64
	Passed    bool // Whether the body has cleared this pipe (scored)
}

// Advance moves the pipe left by speed.
func (p *Pipe) Advance(speed float64) {
	p.X -= speed
}

// Right returns the x-coordinate of the trailing edge.
func (p Pipe) Right() float64 {
	return p.X + p.Width
}

// Segments returns the solid rectangles above and below the gap.
// The top segment spans [0, GapTop), the bottom [GapBottom, fieldH).
func (p Pipe) Segments(fieldH float64) (top, bottom core.Rect) {
	top = core.NewRect(p.X, 0, p.Width, max(p.GapTop, 0))
	bottom = core.NewRect(p.X, p.GapBottom, p.Width, max(fieldH-p.GapBottom, 0))
	return top, bottom
}

// markPassed flips Passed and reports whether it changed.
func (p *Pipe) markPassed() bool {
	if p.Passed {
		return false
	}
	p.Passed = true
	return true
}
