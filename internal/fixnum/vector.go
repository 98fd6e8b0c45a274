package fixnum

import "fmt"

// Vec2 is a 2D vector of fixed-point components.
type Vec2 struct {
	X, Y Num
}

// V builds a vector from two fixed-point components.
func V(x, y Num) Vec2 { return Vec2{X: x, Y: y} }

// VI builds a vector from integer components.
func VI(x, y int) Vec2 { return Vec2{X: New(x), Y: New(y)} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Neg() Vec2       { return Vec2{-v.X, -v.Y} }

// Mul scales both components by a fixed-point factor.
func (v Vec2) Mul(n Num) Vec2 { return Vec2{v.X.Mul(n), v.Y.Mul(n)} }

// MulInt scales both components by an integer.
func (v Vec2) MulInt(i int) Vec2 { return Vec2{v.X.MulInt(i), v.Y.MulInt(i)} }

// DivInt divides both components by an integer, truncating toward zero.
func (v Vec2) DivInt(i int) Vec2 { return Vec2{v.X.DivInt(i), v.Y.DivInt(i)} }

// Floor returns the integer point at or below v on both axes.
func (v Vec2) Floor() Point { return Point{v.X.Floor(), v.Y.Floor()} }

// MagnitudeSquared is x*x + y*y. Use it for radius checks to avoid Sqrt.
func (v Vec2) MagnitudeSquared() Num { return v.X.Mul(v.X) + v.Y.Mul(v.Y) }

// Magnitude is the Euclidean length.
func (v Vec2) Magnitude() Num { return v.MagnitudeSquared().Sqrt() }

// ManhattanDistance is |x| + |y|.
func (v Vec2) ManhattanDistance() Num { return v.X.Abs() + v.Y.Abs() }

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

func (v Vec2) String() string { return fmt.Sprintf("(%s, %s)", v.X, v.Y) }

// Point is an integer pixel or tile coordinate.
type Point struct {
	X, Y int
}

// P builds a point.
func P(x, y int) Point { return Point{X: x, Y: y} }

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }

// MulInt scales both coordinates.
func (p Point) MulInt(i int) Point { return Point{p.X * i, p.Y * i} }

// DivInt divides both coordinates, truncating toward zero.
func (p Point) DivInt(i int) Point { return Point{p.X / i, p.Y / i} }

// Vec converts p to a fixed-point vector.
func (p Point) Vec() Vec2 { return VI(p.X, p.Y) }

func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }
