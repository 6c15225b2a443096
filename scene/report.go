package scene

import (
	"fmt"
	"math"
	"strings"

	"github.com/osuushi/euclid"
)

// A Value is one computed result in a report. Undefined results (NaN scalars,
// missing points, empty intersections) report themselves as such rather than
// being left out.
type Value interface {
	Undefined() bool
	String() string
}

type Scalar float64

func (s Scalar) Undefined() bool { return math.IsNaN(float64(s)) }
func (s Scalar) String() string  { return fmt.Sprintf("%g", float64(s)) }

type Flag bool

func (f Flag) Undefined() bool { return false }
func (f Flag) String() string  { return fmt.Sprintf("%t", bool(f)) }

type Location struct {
	Point *euclid.Point
}

func (l Location) Undefined() bool { return l.Point == nil }
func (l Location) String() string {
	if l.Point == nil {
		return "undefined"
	}
	return l.Point.String()
}

type Direction struct {
	Vector *euclid.Vector
}

func (d Direction) Undefined() bool { return d.Vector == nil }
func (d Direction) String() string {
	if d.Vector == nil {
		return "undefined"
	}
	return d.Vector.String()
}

// An empty set of locations is a valid answer (the shapes don't meet), but it
// is reported as undefined like every other missing result.
type Locations []*euclid.Point

func (l Locations) Undefined() bool { return len(l) == 0 }
func (l Locations) String() string {
	if len(l) == 0 {
		return "none"
	}
	parts := make([]string, len(l))
	for i, p := range l {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

type Entry struct {
	// The name of the shape, or "a × b" for results involving two shapes.
	Subject  string
	Property string
	Value    Value
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %s: %s", e.Subject, e.Property, e.Value)
}

// Report computes every calculated property of every shape, followed by the
// results of combining shapes pairwise: line intercepts, circle and line
// intersections, point reflections in lines, and angles between vectors.
func (s *Scene) Report() []Entry {
	var entries []Entry
	for _, shape := range s.Shapes {
		entries = append(entries, shape.properties()...)
	}

	lines := s.OfKind(KindLine)
	for i, a := range lines {
		for _, b := range lines[i+1:] {
			entries = append(entries, Entry{
				Subject:  pair(a, b),
				Property: "intercept",
				Value:    Location{euclid.InterceptOfLines(a.Geometry.(*euclid.Line), b.Geometry.(*euclid.Line))},
			})
		}
	}

	for _, circle := range s.OfKind(KindCircle) {
		for _, line := range lines {
			points := euclid.IntersectionOfCircleAndLine(circle.Geometry.(*euclid.Circle), line.Geometry.(*euclid.Line))
			entries = append(entries, Entry{pair(circle, line), "intersection", Locations(points)})
		}
	}

	for _, point := range s.OfKind(KindPoint) {
		for _, line := range lines {
			reflection := euclid.NewPointReflectInLine(point.Geometry.(*euclid.Point), line.Geometry.(*euclid.Line))
			entries = append(entries, Entry{pair(point, line), "reflection", Location{reflection}})
		}
	}

	vectors := s.OfKind(KindVector)
	for i, a := range vectors {
		for _, b := range vectors[i+1:] {
			va, vb := a.Geometry.(*euclid.Vector), b.Geometry.(*euclid.Vector)
			entries = append(entries,
				Entry{pair(a, b), "dot product", Scalar(euclid.DotProduct(va, vb))},
				Entry{pair(a, b), "angle between", Scalar(euclid.AngleBetweenVectors(va, vb))},
			)
		}
	}

	return entries
}

func pair(a, b *Shape) string {
	return a.Name + " × " + b.Name
}

func (s *Shape) properties() []Entry {
	var entries []Entry
	add := func(property string, value Value) {
		entries = append(entries, Entry{Subject: s.Name, Property: property, Value: value})
	}

	switch g := s.Geometry.(type) {
	case *euclid.Point:
		add("angle", Scalar(g.Angle()))
		add("slope", Scalar(g.Slope()))
		add("distance", Scalar(g.Distance()))
	case *euclid.Vector:
		add("magnitude", Scalar(g.Magnitude()))
		add("angle", Scalar(g.Angle()))
		add("slope", Scalar(g.Slope()))
		add("unit vector", Direction{g.UnitVector()})
		add("zero", Flag(g.IsZeroVector()))
	case *euclid.Line:
		add("m", Scalar(g.M()))
		add("c", Scalar(g.C()))
		add("y intercept", Location{g.YIntercept()})
		add("x intercept", Location{g.XIntercept()})
		add("vertical", Flag(g.IsVertical()))
		add("horizontal", Flag(g.IsHorizontal()))
	case *euclid.LineSegment:
		add("length", Scalar(g.Length()))
		add("slope", Scalar(g.Slope()))
		add("midpoint", Location{g.Midpoint()})
	case *euclid.Polygon:
		add("vertices", Scalar(g.NumberOfVertices()))
		add("area", Scalar(g.Area()))
		add("perimeter", Scalar(g.Perimeter()))
		add("centroid", Location{g.Centroid()})
		add("counterclockwise", Flag(g.IsCCW()))
	case *euclid.Circle:
		add("diameter", Scalar(g.Diameter()))
		add("area", Scalar(g.Area()))
		add("circumference", Scalar(g.Circumference()))
	}

	return entries
}
