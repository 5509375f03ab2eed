package shapes

import "math"

// Rectangle is an axis-aligned rectangle described by its width and height.
//
// The dimensions are stored verbatim: no range validation is performed, and
// negative or zero dimensions are accepted.
type Rectangle struct {
	Width  float64
	Height float64
}

var _ Polygon = Rectangle{}

// Area implements Shape. The error is always nil.
func (r Rectangle) Area() (float64, error) {
	return r.Width * r.Height, nil
}

func (r Rectangle) Perimeter() float64 {
	return 2 * (r.Width + r.Height)
}

// EdgeCount implements Polygon. Rectangles have a fixed topology, so this is
// the constant 4.
func (r Rectangle) EdgeCount() int {
	return 4
}

// VertexCount implements Polygon. It is the constant 4.
func (r Rectangle) VertexCount() int {
	return 4
}

// IsSquare reports whether the width equals the height.
//
// The comparison is the native float64 equality, with no epsilon tolerance.
// Dimensions that are mathematically equal but differ in their floating
// point representation compare unequal.
func (r Rectangle) IsSquare() bool {
	return r.Width == r.Height
}

// Scale returns the rectangle with both dimensions scaled by factor.
func (r Rectangle) Scale(factor float64) Rectangle {
	return Rectangle{
		Width:  r.Width * factor,
		Height: r.Height * factor,
	}
}

func (r Rectangle) IsInf() bool {
	return math.IsInf(r.Width, 0) || math.IsInf(r.Height, 0)
}

func (r Rectangle) IsNaN() bool {
	return math.IsNaN(r.Width) || math.IsNaN(r.Height)
}
