package scene

import (
	"github.com/osuushi/euclid"
	"github.com/osuushi/euclid/internal"
)

// The YAML layout of a scene. Each shape must set exactly one of the geometry
// keys. Coordinates are written as two element lists, [x, y].

type document struct {
	Shapes []shapeDoc `yaml:"shapes"`
}

type shapeDoc struct {
	Name    string      `yaml:"name"`
	Point   []float64   `yaml:"point"`
	Vector  []float64   `yaml:"vector"`
	Line    [][]float64 `yaml:"line"`
	Segment [][]float64 `yaml:"segment"`
	Polygon [][]float64 `yaml:"polygon"`
	Circle  *circleDoc  `yaml:"circle"`
}

type circleDoc struct {
	Center []float64 `yaml:"center"`
	Radius *float64  `yaml:"radius"`
}

// Convert the document to a geometry value. Panics with a DecodeError if the
// shape is malformed.
func (d *shapeDoc) geometry(index int) interface{} {
	var result interface{}
	set := func(g interface{}) {
		if result != nil {
			internal.Fatalf("shape %d (%q) has more than one geometry", index, d.Name)
		}
		result = g
	}

	if d.Point != nil {
		set(coordinate(index, d.Point))
	}
	if d.Vector != nil {
		p := coordinate(index, d.Vector)
		set(euclid.NewVector(p.X, p.Y))
	}
	if d.Line != nil {
		points := coordinates(index, d.Line, 2)
		set(euclid.NewLine(points[0], points[1]))
	}
	if d.Segment != nil {
		points := coordinates(index, d.Segment, 2)
		set(euclid.NewLineSegment(points[0], points[1]))
	}
	if d.Polygon != nil {
		set(euclid.NewPolygon(coordinates(index, d.Polygon, -1)...))
	}
	if d.Circle != nil {
		if d.Circle.Radius == nil {
			internal.Fatalf("shape %d (%q): circle has no radius", index, d.Name)
		}
		set(euclid.NewCircle(coordinate(index, d.Circle.Center), *d.Circle.Radius))
	}

	if result == nil {
		internal.Fatalf("shape %d (%q) has no geometry", index, d.Name)
	}
	return result
}

func coordinate(index int, values []float64) *euclid.Point {
	if len(values) != 2 {
		internal.Fatalf("shape %d: coordinate must have 2 values, got %d", index, len(values))
	}
	return euclid.NewPoint(values[0], values[1])
}

// Convert a list of coordinates. If count is non-negative, exactly that many
// are required.
func coordinates(index int, values [][]float64, count int) []*euclid.Point {
	if count >= 0 && len(values) != count {
		internal.Fatalf("shape %d: expected %d coordinates, got %d", index, count, len(values))
	}
	points := make([]*euclid.Point, len(values))
	for i, v := range values {
		points[i] = coordinate(index, v)
	}
	return points
}
