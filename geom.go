package gfx

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a Rect from position and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// WholeRect is the unit rectangle covering an entire texture in
// normalized coordinates.
func WholeRect() Rect {
	return Rect{X: 0, Y: 0, W: 1, H: 1}
}

// IsZero reports whether the rectangle is the zero value.
func (r Rect) IsZero() bool {
	return r == Rect{}
}
