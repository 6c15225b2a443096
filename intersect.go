package euclid

import "math"

// Find the single point where two lines cross. Parallel lines give nil, and so
// do coincident lines, since they have no unique intersection.
func InterceptOfLines(line1, line2 *Line) *Point {
	m1, m2 := line1.M(), line2.M()
	vertical1, vertical2 := math.IsNaN(m1), math.IsNaN(m2)

	switch {
	case !vertical1 && !vertical2 && m1 != m2:
		c1, c2 := line1.C(), line2.C()
		x := (c2 - c1) / (m1 - m2)
		return &Point{X: x, Y: m1*x + c1}
	case vertical1 && vertical2, m1 == m2:
		return nil
	case vertical1:
		x := line1.XIntercept().X
		return &Point{X: x, Y: m2*x + line2.C()}
	default:
		x := line2.XIntercept().X
		return &Point{X: x, Y: m1*x + line1.C()}
	}
}

// Find the points where a line crosses a circle. There are two points for a
// secant, one for a tangent, and none when the line misses. For non-vertical
// lines, the point with the larger x comes first. For vertical lines, the
// point with the larger y comes first.
func IntersectionOfCircleAndLine(circle *Circle, line *Line) []*Point {
	r := circle.Radius
	a := circle.Center.X
	b := circle.Center.Y

	if line.IsVertical() {
		x := line.XIntercept().X
		d := math.Abs(x - a)
		switch {
		case d < r:
			h := math.Sqrt(r*r - d*d)
			return []*Point{{X: x, Y: b + h}, {X: x, Y: b - h}}
		case d == r:
			return []*Point{{X: x, Y: b}}
		}
		return nil
	}

	// Substitute y = mx + c into (x - a)² + (y - b)² = r² and solve the
	// resulting quadratic in x.
	m := line.M()
	c := line.C()
	qa := m*m + 1
	qb := 2 * (m*(c-b) - a)
	qc := a*a + (c-b)*(c-b) - r*r
	delta := qb*qb - 4*qa*qc

	switch {
	case delta < 0:
		return nil
	case delta == 0:
		x := -qb / (2 * qa)
		return []*Point{{X: x, Y: x*m + c}}
	}
	x1 := (-qb + math.Sqrt(delta)) / (2 * qa)
	x2 := (-qb - math.Sqrt(delta)) / (2 * qa)
	return []*Point{
		{X: x1, Y: x1*m + c},
		{X: x2, Y: x2*m + c},
	}
}
