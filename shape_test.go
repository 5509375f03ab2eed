package shapes

import (
	"math"
	"testing"
)

func TestPolymorphicDispatch(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-9
	}

	f := func(s Shape, wantArea, wantPerimeter float64) {
		t.Helper()
		a, err := s.Area()
		if err != nil {
			t.Errorf("%T: got error %v, want nil", s, err)
			return
		}
		if !approxEqual(a, wantArea) {
			t.Errorf("%T: got area %v, want %v", s, a, wantArea)
		}
		if p := s.Perimeter(); !approxEqual(p, wantPerimeter) {
			t.Errorf("%T: got perimeter %v, want %v", s, p, wantPerimeter)
		}
	}
	f(Circle{Radius: 2}, 4*math.Pi, 4*math.Pi)
	f(Rectangle{Width: 3, Height: 4}, 12, 14)
	f(Triangle{SideA: 3, SideB: 4, SideC: 5}, 6, 12)
}

func TestPolygonCounts(t *testing.T) {
	for _, p := range []Polygon{
		Rectangle{Width: 10, Height: 4},
		Triangle{SideA: 3, SideB: 4, SideC: 5},
	} {
		edges := p.EdgeCount()
		vertices := p.VertexCount()
		if edges < 3 {
			t.Errorf("%T: got edge count %v, want at least 3", p, edges)
		}
		if edges != vertices {
			t.Errorf("%T: got %v edges and %v vertices, want them to be equal", p, edges, vertices)
		}
	}
}
