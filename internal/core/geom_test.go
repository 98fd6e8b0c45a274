package core

import "testing"

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(10, 4, 80, 24)
	if r.X != 35 || r.Y != 10 {
		t.Errorf("CenteredRect origin = (%d, %d), expected (35, 10)", r.X, r.Y)
	}
	if r.Right() != 45 || r.Bottom() != 14 {
		t.Errorf("CenteredRect edges = (%d, %d), expected (45, 14)", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
