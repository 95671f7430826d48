package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Body is the controllable falling body.
// Y is the top of its hitbox; positive velocity moves it down.
type Body struct {
	Y       float64 // Vertical position (top of hitbox)
	Vel     float64 // Vertical velocity per tick
	Gravity float64 // Added to Vel every tick
	Lift    float64 // Upward speed set by a flap

	x        float64
	w, h     float64
	initialY float64
}

// NewBody creates a body at (x, y) with a w×h hitbox, at rest.
func NewBody(x, y, w, h, gravity, lift float64) Body {
	return Body{
		Y:        y,
		Gravity:  gravity,
		Lift:     lift,
		x:        x,
		w:        w,
		h:        h,
		initialY: y,
	}
}

// X returns the fixed horizontal position.
func (b Body) X() float64 {
	return b.x
}

// Flap sets the velocity to the lift impulse, upward.
// Position changes on the next Integrate.
func (b *Body) Flap() {
	b.Vel = -b.Lift
}

// Integrate advances the body by one tick. Position is not clamped.
func (b *Body) Integrate() {
	b.Vel += b.Gravity
	b.Y += b.Vel
}

// Reset restores the starting position and zero velocity. Gravity is kept.
func (b *Body) Reset() {
	b.Y = b.initialY
	b.Vel = 0
}

// Rect returns the body's hitbox.
func (b Body) Rect() core.Rect {
	return core.NewRect(b.x, b.Y, b.w, b.h)
}
