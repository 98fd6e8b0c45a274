package fixnum

import (
	"errors"
	"testing"
)

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		got      Num
		expected Num
	}{
		{"add", New(2).Add(Ratio(1, 2)), Ratio(5, 2)},
		{"sub", New(2).Sub(Ratio(1, 4)), Ratio(7, 4)},
		{"mul", Ratio(3, 2).Mul(New(4)), New(6)},
		{"mul fractions", Ratio(1, 2).Mul(Ratio(1, 2)), Ratio(1, 4)},
		{"div", New(3).Div(New(2)), Ratio(3, 2)},
		{"div negative truncates toward zero", FromRaw(-3).Div(New(2)), FromRaw(-1)},
		{"mul int", Ratio(1, 16).MulInt(3), Ratio(3, 16)},
		{"div int", New(1).DivInt(8), Ratio(1, 8)},
		{"friction ratio", New(1).MulInt(54).DivInt(64), FromRaw(216)},
		{"neg", New(5).Neg(), New(-5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v (raw %d), expected %v (raw %d)", tt.got, tt.got.Raw(), tt.expected, tt.expected.Raw())
			}
		})
	}
}

func TestFloor(t *testing.T) {
	tests := []struct {
		in       Num
		expected int
	}{
		{New(3), 3},
		{Ratio(7, 2), 3},
		{Ratio(-1, 2), -1},
		{Ratio(-7, 2), -4},
		{New(-2), -2},
		{FromRaw(-1), -1},
		{0, 0},
	}

	for _, tt := range tests {
		if got := tt.in.Floor(); got != tt.expected {
			t.Errorf("Floor(%v) = %d, expected %d", tt.in, got, tt.expected)
		}
	}
}

func TestAbsSign(t *testing.T) {
	if New(-3).Abs() != New(3) {
		t.Errorf("Abs(-3) = %v, expected 3", New(-3).Abs())
	}
	if Ratio(1, 4).Abs() != Ratio(1, 4) {
		t.Error("Abs of a positive value should not change it")
	}
	if New(-1).Sign() != -1 || New(0).Sign() != 0 || New(9).Sign() != 1 {
		t.Error("Sign() returned an unexpected value")
	}
}

func TestSqrt(t *testing.T) {
	tests := []struct {
		in       Num
		expected Num
	}{
		{New(0), 0},
		{New(1), New(1)},
		{New(4), New(2)},
		{New(225), New(15)},
		{Ratio(1, 4), Ratio(1, 2)},
		{New(-4), 0},
	}
	for _, tt := range tests {
		if got := tt.in.Sqrt(); got != tt.expected {
			t.Errorf("Sqrt(%v) = %v, expected %v", tt.in, got, tt.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := New(5).Clamp(0, New(3)); got != New(3) {
		t.Errorf("Clamp high = %v, expected 3", got)
	}
	if got := New(-5).Clamp(0, New(3)); got != 0 {
		t.Errorf("Clamp low = %v, expected 0", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		expected Num
		wantErr  bool
	}{
		{"3", New(3), false},
		{"-3/2", Ratio(-3, 2), false},
		{"1/16", Ratio(1, 16), false},
		{" 54 / 64 ", Ratio(54, 64), false},
		{"0.25", Ratio(1, 4), false},
		{"-0.5", Ratio(-1, 2), false},
		{"-1.5", Ratio(-3, 2), false},
		{".5", Ratio(1, 2), false},
		{"", 0, true},
		{"abc", 0, true},
		{"1/0", 0, true},
		{"1.", 0, true},
		{"1.x", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrSyntax) {
					t.Errorf("Parse(%q) error = %v, expected ErrSyntax", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.expected {
				t.Errorf("Parse(%q) = %v, expected %v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in       Num
		expected string
	}{
		{New(3), "3"},
		{Ratio(3, 2), "1.5"},
		{Ratio(-1, 4), "-0.25"},
		{Ratio(1, 16), "0.0625"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.expected {
			t.Errorf("String() = %q, expected %q", got, tt.expected)
		}
	}
}

func TestVectorOps(t *testing.T) {
	v := VI(3, -4)

	if got := v.MagnitudeSquared(); got != New(25) {
		t.Errorf("MagnitudeSquared() = %v, expected 25", got)
	}
	if got := v.Magnitude(); got != New(5) {
		t.Errorf("Magnitude() = %v, expected 5", got)
	}
	if got := v.ManhattanDistance(); got != New(7) {
		t.Errorf("ManhattanDistance() = %v, expected 7", got)
	}
	if got := V(Ratio(-1, 2), Ratio(7, 2)).Floor(); got != P(-1, 3) {
		t.Errorf("Floor() = %v, expected (-1, 3)", got)
	}
	if got := v.Add(VI(1, 1)).Sub(VI(4, -3)); !got.IsZero() {
		t.Errorf("Add/Sub = %v, expected zero", got)
	}
	if got := VI(8, 16).DivInt(4).MulInt(2); got != VI(4, 8) {
		t.Errorf("DivInt/MulInt = %v, expected (4, 8)", got)
	}
	if got := P(10, 20).Sub(P(2, 4)).DivInt(2); got != P(4, 8) {
		t.Errorf("Point ops = %v, expected (4, 8)", got)
	}
}

func TestLargeDistanceDoesNotOverflow(t *testing.T) {
	// Two corners of a 40000 px level.
	d := VI(40000, 40000).Sub(VI(0, 0))
	if got := d.MagnitudeSquared(); got != New(3_200_000_000) {
		t.Errorf("MagnitudeSquared() = %v, expected 3200000000", got)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, expected int }{
		{16, 8, 2}, {15, 8, 1}, {0, 8, 0}, {-1, 8, -1}, {-8, 8, -1}, {-9, 8, -2}, {9, -8, -2},
	}
	for _, tt := range tests {
		if got := FloorDiv(tt.a, tt.b); got != tt.expected {
			t.Errorf("FloorDiv(%d, %d) = %d, expected %d", tt.a, tt.b, got, tt.expected)
		}
	}
}
