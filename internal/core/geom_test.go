package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping cubes", NewRect(0, 0, 24, 24), NewRect(12, 12, 24, 24), true},
		{"apart horizontally", NewRect(0, 0, 24, 24), NewRect(40, 0, 24, 24), false},
		{"apart vertically", NewRect(0, 0, 24, 24), NewRect(0, 40, 24, 24), false},
		{"touching edges", NewRect(0, 0, 24, 24), NewRect(24, 0, 24, 24), false},
		{"contained", NewRect(0, 0, 50, 50), NewRect(10, 10, 5, 5), true},
		{"single pixel overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRectMove(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	moved := r.Move(-7, 3)

	if moved != NewRect(-2, 13, 20, 15) {
		t.Errorf("Move(-7, 3) = %+v", moved)
	}
	if r != NewRect(5, 10, 20, 15) {
		t.Errorf("Move must not modify the receiver, got %+v", r)
	}
}

func TestRectInflate(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		dx, dy   int
		expected Rect
	}{
		{"shrink odd", NewRect(0, 0, 32, 32), -5, -5, NewRect(2, 2, 27, 27)},
		{"grow even", NewRect(10, 10, 10, 10), 4, 2, NewRect(8, 9, 14, 12)},
		{"no-op", NewRect(1, 2, 3, 4), 0, 0, NewRect(1, 2, 3, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Inflate(tc.dx, tc.dy); got != tc.expected {
				t.Errorf("Inflate(%d, %d) = %+v, expected %+v", tc.dx, tc.dy, got, tc.expected)
			}
		})
	}
}

func TestRectWithCenter(t *testing.T) {
	r := NewRect(0, 0, 27, 27).WithCenter(400, 300)

	cx, cy := r.Center()
	if cx != 400 || cy != 300 {
		t.Errorf("Center() after WithCenter = (%d, %d), expected (400, 300)", cx, cy)
	}
	if r.X != 387 || r.Y != 287 {
		t.Errorf("WithCenter placed rect at (%d, %d), expected (387, 287)", r.X, r.Y)
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
