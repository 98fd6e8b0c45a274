// Package fixnum provides deterministic fixed-point arithmetic for the
// platformer physics. Every position, velocity and tile-space computation
// goes through Num so a replay with the same inputs lands on the same pixels.
package fixnum

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Fixed-point format: Q.8 held in an int64. The wide backing integer keeps
// squared distances across large levels well clear of overflow.
const (
	Shift = 8
	Scale = 1 << Shift
	Mask  = Scale - 1
)

// ErrSyntax is returned by Parse for malformed input.
var ErrSyntax = errors.New("fixnum: invalid syntax")

// Num is a signed fixed-point number with Shift fractional bits.
type Num int64

// New returns the fixed-point value of an integer.
func New(i int) Num { return Num(int64(i) << Shift) }

// FromRaw wraps an already scaled value.
func FromRaw(raw int64) Num { return Num(raw) }

// Ratio returns num/den. It panics when den is zero, like integer division.
func Ratio(num, den int) Num { return New(num).DivInt(den) }

// Raw returns the underlying scaled integer.
func (n Num) Raw() int64 { return int64(n) }

func (n Num) Add(o Num) Num { return n + o }
func (n Num) Sub(o Num) Num { return n - o }
func (n Num) Neg() Num      { return -n }

// Mul multiplies and rescales. The shift floors the dropped fraction.
func (n Num) Mul(o Num) Num { return Num((int64(n) * int64(o)) >> Shift) }

// Div rescales before dividing so the quotient keeps its fraction.
// The result truncates toward zero.
func (n Num) Div(o Num) Num { return Num((int64(n) << Shift) / int64(o)) }

// MulInt multiplies by a plain integer; no rescaling is needed.
func (n Num) MulInt(i int) Num { return n * Num(i) }

// DivInt divides by a plain integer, truncating toward zero.
func (n Num) DivInt(i int) Num { return n / Num(i) }

// Abs returns the absolute value.
func (n Num) Abs() Num {
	if n < 0 {
		return -n
	}
	return n
}

// Floor returns the largest integer not greater than n.
func (n Num) Floor() int { return int(int64(n) >> Shift) }

// FloorDiv divides integers rounding toward negative infinity, so pixel -1
// falls in tile -1 rather than tile 0.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Frac returns the fractional part, always in [0, 1).
func (n Num) Frac() Num { return n & Mask }

// Sign returns -1, 0 or 1.
func (n Num) Sign() int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// Clamp restricts n to [lo, hi].
func (n Num) Clamp(lo, hi Num) Num {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Sqrt returns the fixed-point square root of a non-negative value.
// Negative input yields zero.
func (n Num) Sqrt() Num {
	if n <= 0 {
		return 0
	}
	return Num(isqrt(uint64(n) << Shift))
}

// isqrt is the integer square root by Newton iteration.
func isqrt(v uint64) uint64 {
	if v < 2 {
		return v
	}
	x := v
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + v/x) / 2
	}
	return x
}

// String formats n as a decimal with up to four fractional digits.
func (n Num) String() string {
	sign := ""
	v := int64(n)
	if v < 0 {
		sign = "-"
		v = -v
	}
	whole := v >> Shift
	frac := (v & Mask) * 10000 / Scale
	if frac == 0 {
		return fmt.Sprintf("%s%d", sign, whole)
	}
	return strings.TrimRight(fmt.Sprintf("%s%d.%04d", sign, whole, frac), "0")
}

// Parse reads an integer ("3"), a ratio ("-3/2") or a decimal ("0.25")
// without going through floating point.
func Parse(s string) (Num, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrSyntax)
	}

	if num, den, ok := strings.Cut(s, "/"); ok {
		a, err := strconv.Atoi(strings.TrimSpace(num))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		b, err := strconv.Atoi(strings.TrimSpace(den))
		if err != nil || b == 0 {
			return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		return Ratio(a, b), nil
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	neg := strings.HasPrefix(whole, "-")
	w, err := strconv.Atoi(whole)
	if err != nil && !(hasFrac && (whole == "-" || whole == "")) {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	n := New(w)
	if !hasFrac {
		return n, nil
	}
	if frac == "" {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	digits, err := strconv.ParseUint(frac, 10, 63)
	if err != nil || len(frac) > 9 {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	denom := int64(1)
	for range len(frac) {
		denom *= 10
	}
	f := Num(int64(digits) * Scale / denom)
	if neg {
		return n - f, nil
	}
	return n + f, nil
}
