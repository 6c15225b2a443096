package euclid

import (
	"math"

	"github.com/paulmach/orb"
)

// Unlike Line, a segment is bounded by its two endpoints.
type LineSegment struct {
	Point1 Point
	Point2 Point
}

func NewLineSegment(point1, point2 *Point) *LineSegment {
	return &LineSegment{Point1: *point1.Clone(), Point2: *point2.Clone()}
}

func (s *LineSegment) Midpoint() *Point {
	x := (s.Point1.X + s.Point2.X) / 2
	y := (s.Point1.Y + s.Point2.Y) / 2
	return &Point{X: x, Y: y}
}

func (s *LineSegment) Dx() float64 {
	return s.Point2.X - s.Point1.X
}

func (s *LineSegment) Dy() float64 {
	return s.Point2.Y - s.Point1.Y
}

func (s *LineSegment) Length() float64 {
	return math.Hypot(s.Dx(), s.Dy())
}

// NaN for a vertical segment.
func (s *LineSegment) Slope() float64 {
	dx := s.Dx()
	if dx == 0 {
		return math.NaN()
	}
	return s.Dy() / dx
}

// The infinite line that the segment lies on.
func (s *LineSegment) Line() *Line {
	return NewLine(&s.Point1, &s.Point2)
}

// Displacement from the first endpoint to the second.
func (s *LineSegment) Vector() *Vector {
	return VectorFromPoints(&s.Point1, &s.Point2)
}

func (s *LineSegment) Orb() orb.LineString {
	return orb.LineString{s.Point1.Orb(), s.Point2.Orb()}
}
