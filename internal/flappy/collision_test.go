package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestPipeSegments(t *testing.T) {
	p := Pipe{X: 50, GapTop: 200, GapBottom: 350, Width: 52}

	top, bottom := p.Segments(600)

	if top != core.NewRect(50, 0, 52, 200) {
		t.Errorf("top segment = %+v", top)
	}
	if bottom != core.NewRect(50, 350, 52, 250) {
		t.Errorf("bottom segment = %+v", bottom)
	}
	if p.Right() != 102 {
		t.Errorf("Right() = %v, expected 102", p.Right())
	}
}

func TestPipeMarkPassedOnce(t *testing.T) {
	p := Pipe{}
	if !p.markPassed() {
		t.Error("first markPassed should transition")
	}
	if p.markPassed() {
		t.Error("second markPassed should not transition")
	}
	if !p.Passed {
		t.Error("Passed should stay true")
	}
}

func TestCollides(t *testing.T) {
	pipe := Pipe{X: 90, GapTop: 200, GapBottom: 350, Width: 52}

	tests := []struct {
		name     string
		body     core.Rect
		expected bool
	}{
		{"inside the gap", core.NewRect(100, 250, 34, 24), false},
		{"overlaps lower segment", core.NewRect(100, 340, 34, 24), true},
		{"overlaps upper segment", core.NewRect(100, 190, 34, 24), true},
		{"touches gap top exactly", core.NewRect(100, 200, 34, 24), false},
		{"touches gap bottom exactly", core.NewRect(100, 326, 34, 24), false},
		{"left of the pipe", core.NewRect(20, 500, 34, 24), false},
		{"touching left edge", core.NewRect(56, 500, 34, 24), false},
		{"below the field", core.NewRect(100, 700, 34, 24), false},
		{"above the field", core.NewRect(100, -100, 34, 24), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(tc.body, pipe, 600); got != tc.expected {
				t.Errorf("Collides() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		name     string
		body     core.Rect
		expected bool
	}{
		{"inside", core.NewRect(100, 300, 34, 24), false},
		{"touching floor", core.NewRect(100, 576, 34, 24), false},
		{"through floor", core.NewRect(100, 577, 34, 24), true},
		{"above ceiling", core.NewRect(100, -1, 34, 24), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := OutOfBounds(tc.body, 600); got != tc.expected {
				t.Errorf("OutOfBounds() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
