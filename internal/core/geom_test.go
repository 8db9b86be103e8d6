package core

import "testing"

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
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
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

func TestRectEdgesAndInset(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 || r.Bottom() != 25 {
		t.Errorf("Right/Bottom = %d/%d, expected 25/25", r.Right(), r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}

	in := r.Inset(1)
	if in != NewRect(6, 11, 18, 13) {
		t.Errorf("Inset(1) = %+v", in)
	}
	if tiny := NewRect(0, 0, 1, 1).Inset(2); tiny.W != 0 || tiny.H != 0 {
		t.Errorf("over-inset should collapse to zero size, got %+v", tiny)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestProject(t *testing.T) {
	tests := []struct {
		name       string
		v          float64
		inLo, inHi float64
		outLo      int
		outHi      int
		expected   int
	}{
		{"low end", -3, -3, 3, 0, 20, 0},
		{"high end", 3, -3, 3, 0, 20, 20},
		{"middle", 0, -3, 3, 0, 20, 10},
		{"clamped below", -10, -3, 3, 0, 20, 0},
		{"clamped above", 10, -3, 3, 0, 20, 20},
		{"inverted output", 0, 0, 20, 18, 2, 18},
		{"inverted output far", 20, 0, 20, 18, 2, 2},
		{"degenerate input", 5, 1, 1, 4, 9, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Project(tc.v, tc.inLo, tc.inHi, tc.outLo, tc.outHi); got != tc.expected {
				t.Errorf("Project(%v) = %d, expected %d", tc.v, got, tc.expected)
			}
		})
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
