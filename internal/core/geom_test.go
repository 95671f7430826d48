package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
		{
			name:     "zero height never overlaps",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(2, 2, 5, 0),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestRectBodyAgainstPipeSegments(t *testing.T) {
	// Pipe 52 wide at x=120 with a gap from y=250 to y=400 in a 600 tall field.
	top := NewRect(120, 0, 52, 250)
	bottom := NewRect(120, 400, 52, 200)

	tests := []struct {
		name string
		body Rect
		hit  bool
	}{
		{"inside the gap", NewRect(100, 300, 34, 24), false},
		{"clipping the upper segment", NewRect(100, 240, 34, 24), true},
		{"clipping the lower segment", NewRect(100, 380, 34, 24), true},
		{"resting on the gap top edge", NewRect(100, 250, 34, 24), false},
		{"resting on the gap bottom edge", NewRect(100, 376, 34, 24), false},
		{"left of the pipe", NewRect(86, 100, 34, 24), false},
		{"past the pipe", NewRect(172, 100, 34, 24), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.body.Intersects(top) || tc.body.Intersects(bottom)
			if got != tc.hit {
				t.Errorf("body %+v hit = %v, expected %v", tc.body, got, tc.hit)
			}
		})
	}

	// A gap reaching the field edge leaves an empty segment, which never collides.
	flush := NewRect(120, 0, 52, 0)
	if !flush.Empty() {
		t.Error("zero-height segment should be empty")
	}
	if NewRect(100, -10, 34, 24).Intersects(flush) {
		t.Error("empty segment should never intersect the body")
	}
}
