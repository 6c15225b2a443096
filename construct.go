package euclid

import "math"

// Build a line from the slope and intercept of the two points rather than from
// the points themselves. The result is in canonical form: it is defined by its
// y intercept and the point one unit to the right of it. A vertical line has no
// y intercept, so it is defined by its x intercept and the point one unit above
// that instead.
//
// The derived properties agree with NewLine(point1, point2) only up to
// rounding, since M and C are recomputed from the canonical points. The
// stored points generally differ from the arguments. Use NewLine when the
// original points or exact slopes matter.
func LineFromPoints(point1, point2 *Point) *Line {
	x1, y1 := point1.X, point1.Y
	x2, y2 := point2.X, point2.Y
	if x1 == x2 {
		return &Line{Point1: Point{X: x1, Y: 0}, Point2: Point{X: x1, Y: 1}}
	}
	m := (y2 - y1) / (x2 - x1)
	c := y1 - (y2*x1-y1*x1)/(x2-x1)
	return &Line{Point1: Point{X: 0, Y: c}, Point2: Point{X: 1, Y: m + c}}
}

// The line through point with slope m. The second defining point is one unit
// to the right along the slope.
func LineFromPointSlope(point *Point, m float64) *Line {
	point2 := NewPointByVector(point, &Vector{X: 1, Y: m})
	return NewLine(point, point2)
}

func NewPointByVector(point *Point, vector *Vector) *Point {
	return &Point{X: point.X + vector.X, Y: point.Y + vector.Y}
}

// The displacement that takes point1 to point2.
func VectorFromPoints(point1, point2 *Point) *Vector {
	return &Vector{X: point2.X - point1.X, Y: point2.Y - point1.Y}
}

func DotProduct(vector1, vector2 *Vector) float64 {
	return vector1.X*vector2.X + vector1.Y*vector2.Y
}

// Unsigned angle between two vectors in radians, in [0, π]. NaN if either
// vector is the zero vector.
func AngleBetweenVectors(vector1, vector2 *Vector) float64 {
	if vector1.IsZeroVector() || vector2.IsZeroVector() {
		return math.NaN()
	}
	return math.Acos(DotProduct(vector1, vector2) / (vector1.Magnitude() * vector2.Magnitude()))
}
