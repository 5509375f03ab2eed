// Package shapes provides a small polymorphic model of 2D geometric shapes
// that compute their own measures: area, perimeter, and a handful of
// shape-specific derived properties.
//
// # Capabilities and variants
//
// The two core abstractions of this package are capabilities and variants.
//
// [Shape] is the capability root. It describes shapes that can compute their
// area and the length of their boundary. [Polygon] refines [Shape] and
// describes shapes whose boundary consists of straight segments, adding edge
// and vertex counts. Only simple closed polygons are modeled, so for every
// polygon in this package the two counts are equal.
//
// This package includes the following variants:
//   - [Circle], a [Shape]
//   - [Rectangle], a [Polygon]
//   - [Triangle], a [Polygon]
//
// Variants are plain immutable value types. They are constructed with struct
// literals, hold only their scalar dimensions, and never mutate them; methods
// that derive a new shape, such as [Circle.Scale], return a copy. As a
// consequence, all operations are pure and safe for concurrent use without
// synchronization.
//
// # Construction and validation
//
// Construction never fails, with one deliberate exception: [NewCircle]
// performs a runtime check that its argument is one of the recognized
// numeric types, returning a [NumericTypeError] otherwise. Beyond that type
// check, dimensions are stored verbatim. Negative radii, zero-sized
// rectangles, and side lengths that cannot form a triangle are all accepted.
//
// Validation that depends on a numeric invariant happens in the operation
// that needs the invariant, not at construction time. The only such
// operation is [Triangle.Area], which requires the triangle inequality to
// hold and returns [ErrDegenerateTriangle] when it doesn't. Area is fallible
// on the [Shape] interface for this reason; all other measures are total
// functions of their dimensions and never fail.
package shapes
