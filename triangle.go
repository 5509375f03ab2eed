package shapes

import (
	"errors"
	"math"
)

// ErrDegenerateTriangle is returned by [Triangle.Area] when the side lengths
// do not satisfy the triangle inequality.
var ErrDegenerateTriangle = errors.New("side lengths do not satisfy the triangle inequality")

// Triangle is a triangle described by its three side lengths.
//
// The sides are stored verbatim; the triangle inequality is not checked at
// construction time. Degenerate side lengths only surface as an error from
// [Triangle.Area], the one operation that depends on the inequality.
type Triangle struct {
	SideA float64
	SideB float64
	SideC float64
}

var _ Polygon = Triangle{}

// Area implements Shape, using Heron's formula: with the semi-perimeter
// s = (a+b+c)/2, the area is √(s·(s−a)·(s−b)·(s−c)).
//
// If the radicand is negative, the side lengths violate the triangle
// inequality and Area returns [ErrDegenerateTriangle].
func (tri Triangle) Area() (float64, error) {
	s := tri.Perimeter() / 2
	radicand := s * (s - tri.SideA) * (s - tri.SideB) * (s - tri.SideC)
	if radicand < 0 {
		return 0, ErrDegenerateTriangle
	}
	return math.Sqrt(radicand), nil
}

func (tri Triangle) Perimeter() float64 {
	return tri.SideA + tri.SideB + tri.SideC
}

// EdgeCount implements Polygon. It is the constant 3.
func (tri Triangle) EdgeCount() int {
	return 3
}

// VertexCount implements Polygon. It is the constant 3.
func (tri Triangle) VertexCount() int {
	return 3
}

// Scale returns the triangle with all three sides scaled by factor.
func (tri Triangle) Scale(factor float64) Triangle {
	return Triangle{
		SideA: tri.SideA * factor,
		SideB: tri.SideB * factor,
		SideC: tri.SideC * factor,
	}
}

func (tri Triangle) IsInf() bool {
	return math.IsInf(tri.SideA, 0) || math.IsInf(tri.SideB, 0) || math.IsInf(tri.SideC, 0)
}

func (tri Triangle) IsNaN() bool {
	return math.IsNaN(tri.SideA) || math.IsNaN(tri.SideB) || math.IsNaN(tri.SideC)
}
