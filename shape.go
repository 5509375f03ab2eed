package shapes

// Shape describes geometric shapes that can compute their own measures.
//
// Shape is the capability root of this package; every variant implements it.
// [Polygon] refines it for shapes with straight boundary segments.
type Shape interface {
	// Area returns the 2D measure enclosed by the shape.
	//
	// Area is deterministic and side-effect-free. The only variant for which
	// it can fail is [Triangle], whose side lengths are not validated at
	// construction time; see [Triangle.Area]. All other variants return a
	// nil error.
	Area() (float64, error)

	// Perimeter returns the total length of the shape's boundary, which is
	// the circumference for curved shapes.
	Perimeter() float64
}

// Polygon describes shapes whose boundary consists of straight segments.
//
// Only simple closed polygons are modeled: no self-intersecting or
// degenerate topologies. For every such polygon the number of edges equals
// the number of vertices.
type Polygon interface {
	Shape

	// EdgeCount returns the number of straight boundary segments. It is at
	// least 3.
	EdgeCount() int

	// VertexCount returns the number of corner points. It is at least 3 and
	// equals EdgeCount for every variant in this package.
	VertexCount() int
}
