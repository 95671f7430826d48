package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Collides reports whether the body hitbox overlaps either solid segment of p.
func Collides(body core.Rect, p Pipe, fieldH float64) bool {
	top, bottom := p.Segments(fieldH)
	return body.Intersects(top) || body.Intersects(bottom)
}

// OutOfBounds reports whether the body has left the field vertically.
func OutOfBounds(body core.Rect, fieldH float64) bool {
	return body.Y < 0 || body.Bottom() > fieldH
}
