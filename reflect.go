package euclid

import "math"

// Mirror a point in a line. The result is a new point; the argument is left
// alone.
func NewPointReflectInLine(point *Point, line *Line) *Point {
	m := line.M()
	switch {
	case math.IsNaN(m):
		return &Point{X: 2*line.XIntercept().X - point.X, Y: point.Y}
	case m == 0:
		return &Point{X: point.X, Y: 2*line.C() - point.Y}
	}

	// Drop a perpendicular from the point onto the line, then carry on the same
	// distance past the foot of it.
	perpendicular := LineFromPointSlope(point, -1/m)
	foot := InterceptOfLines(line, perpendicular)
	if foot == nil {
		return nil
	}
	return NewPointByVector(foot, VectorFromPoints(point, foot))
}
