package euclid

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// The order of the vertices is the winding order of the polygon. The last
// vertex is implicitly connected back to the first, so the first point should
// not be repeated at the end.
type Polygon struct {
	Vertices []Point
}

func NewPolygon(points ...*Point) *Polygon {
	vertices := make([]Point, len(points))
	for i, point := range points {
		vertices[i] = *point.Clone()
	}
	return &Polygon{Vertices: vertices}
}

func (poly *Polygon) NumberOfVertices() int {
	return len(poly.Vertices)
}

// Shoelace area. The two cross sums are accumulated separately, walking
// forward and backward around the vertex ring. Polygons with fewer than three
// vertices have no meaningful area, but this never panics on them.
func (poly *Polygon) Area() float64 {
	var total1, total2 float64
	n := len(poly.Vertices)
	for i, vertex := range poly.Vertices {
		next := poly.Vertices[CircularIndex(i+1, n)]
		prev := poly.Vertices[CircularIndex(i-1, n)]
		total1 += vertex.X * next.Y
		total2 += vertex.X * prev.Y
	}
	return math.Abs(total1-total2) / 2
}

// Area with sign according to winding: positive for counterclockwise polygons,
// negative for clockwise ones.
func (poly *Polygon) SignedArea() float64 {
	var total float64
	n := len(poly.Vertices)
	for i, vertex := range poly.Vertices {
		next := poly.Vertices[CircularIndex(i+1, n)]
		total += vertex.X*next.Y - next.X*vertex.Y
	}
	return total / 2
}

func (poly *Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly *Polygon) IsCW() bool {
	return poly.SignedArea() < 0
}

// Returns a new polygon with the opposite winding.
func (poly *Polygon) Reverse() *Polygon {
	newPoly := &Polygon{Vertices: make([]Point, 0, len(poly.Vertices))}
	for i := len(poly.Vertices) - 1; i >= 0; i-- {
		newPoly.Vertices = append(newPoly.Vertices, poly.Vertices[i])
	}
	return newPoly
}

func (poly *Polygon) Translate(dx, dy float64) *Polygon {
	for i := range poly.Vertices {
		poly.Vertices[i].Translate(dx, dy)
	}
	return poly
}

// Length of the closed boundary, including the edge from the last vertex back
// to the first.
func (poly *Polygon) Perimeter() float64 {
	return planar.Length(poly.Ring())
}

// Area centroid of the polygon, or nil if the polygon has no area.
func (poly *Polygon) Centroid() *Point {
	if len(poly.Vertices) == 0 {
		return nil
	}
	centroid, area := planar.CentroidArea(poly.Ring())
	if area == 0 {
		return nil
	}
	return &Point{X: centroid[0], Y: centroid[1]}
}

// Points on the boundary are considered inside.
func (poly *Polygon) Contains(p *Point) bool {
	if len(poly.Vertices) == 0 {
		return false
	}
	return planar.RingContains(poly.Ring(), p.Orb())
}

// The vertices as a closed orb ring, with the first vertex repeated at the end.
func (poly *Polygon) Ring() orb.Ring {
	ring := make(orb.Ring, 0, len(poly.Vertices)+1)
	for i := range poly.Vertices {
		ring = append(ring, poly.Vertices[i].Orb())
	}
	if len(poly.Vertices) > 0 {
		ring = append(ring, poly.Vertices[0].Orb())
	}
	return ring
}
