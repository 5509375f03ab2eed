package shapes

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Circle is a circle described by its radius. The position of the circle is
// not part of the model, only the measures derived from its radius.
type Circle struct {
	Radius float64
}

var _ Shape = Circle{}

// NumericTypeError is returned by [NewCircle] when the radius argument is not
// one of the recognized numeric types.
type NumericTypeError struct {
	// Value is the rejected argument.
	Value any
}

func (err *NumericTypeError) Error() string {
	return fmt.Sprintf("radius must be a number, got %T", err.Value)
}

// NewCircle returns a circle with the given radius. The radius may be a value
// of any of Go's integer, floating point, or complex types; any other type
// results in a [NumericTypeError].
//
// Complex values are accepted for numeric-type compatibility and contribute
// their magnitude. They are not geometrically meaningful and no other part of
// the package is complex-aware.
//
// The sign of the radius is not validated; negative radii produce negative
// diameters and perimeters.
func NewCircle(radius any) (Circle, error) {
	switch r := radius.(type) {
	case int:
		return Circle{Radius: float64(r)}, nil
	case int8:
		return Circle{Radius: float64(r)}, nil
	case int16:
		return Circle{Radius: float64(r)}, nil
	case int32:
		return Circle{Radius: float64(r)}, nil
	case int64:
		return Circle{Radius: float64(r)}, nil
	case uint:
		return Circle{Radius: float64(r)}, nil
	case uint8:
		return Circle{Radius: float64(r)}, nil
	case uint16:
		return Circle{Radius: float64(r)}, nil
	case uint32:
		return Circle{Radius: float64(r)}, nil
	case uint64:
		return Circle{Radius: float64(r)}, nil
	case uintptr:
		return Circle{Radius: float64(r)}, nil
	case float32:
		return Circle{Radius: float64(r)}, nil
	case float64:
		return Circle{Radius: r}, nil
	case complex64:
		return Circle{Radius: cmplx.Abs(complex128(r))}, nil
	case complex128:
		return Circle{Radius: cmplx.Abs(r)}, nil
	default:
		return Circle{}, &NumericTypeError{Value: radius}
	}
}

// Area implements Shape. The error is always nil.
func (c Circle) Area() (float64, error) {
	return math.Pi * c.Radius * c.Radius, nil
}

// Perimeter returns the circumference of the circle.
func (c Circle) Perimeter() float64 {
	return 2 * math.Pi * c.Radius
}

// Diameter returns twice the radius.
func (c Circle) Diameter() float64 {
	return 2 * c.Radius
}

// Scale returns the circle with its radius scaled by factor.
func (c Circle) Scale(factor float64) Circle {
	return Circle{Radius: c.Radius * factor}
}

func (c Circle) IsInf() bool {
	return math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return math.IsNaN(c.Radius)
}
