package euclid

import (
	"fmt"
	"math"
)

// An infinite line through two points. Everything else about the line (slope,
// intercepts, orientation) is derived from those two points on every access,
// so mutating Point1 or Point2 moves the line.
type Line struct {
	Point1 Point
	Point2 Point
}

// The points are copied. If both points are the same, the line is degenerate
// and is treated as vertical.
func NewLine(point1, point2 *Point) *Line {
	return &Line{Point1: *point1.Clone(), Point2: *point2.Clone()}
}

// Slope of the line, or NaN when the line is vertical.
func (l *Line) M() float64 {
	if l.Point1.X == l.Point2.X {
		return math.NaN()
	}
	dx := l.Point1.X - l.Point2.X
	dy := l.Point1.Y - l.Point2.Y
	return dy / dx
}

// The constant term in y = mx + c. NaN when the line is vertical.
func (l *Line) C() float64 {
	m := l.M()
	if math.IsNaN(m) {
		return math.NaN()
	}
	return l.Point1.Y - m*l.Point1.X
}

// The point where the line crosses the y axis, or nil for a vertical line.
func (l *Line) YIntercept() *Point {
	c := l.C()
	if math.IsNaN(c) {
		return nil
	}
	return &Point{X: 0, Y: c}
}

// The point where the line crosses the x axis. A horizontal line gives nil,
// even when it lies on the x axis itself. A vertical line crosses at its own x.
func (l *Line) XIntercept() *Point {
	m := l.M()
	switch {
	case m == 0:
		return nil
	case math.IsNaN(m):
		return &Point{X: l.Point1.X, Y: 0}
	}
	return &Point{X: l.Point1.X - l.Point1.Y/m, Y: 0}
}

func (l *Line) IsVertical() bool {
	return math.IsNaN(l.M())
}

func (l *Line) IsHorizontal() bool {
	return l.M() == 0
}

func (l *Line) String() string {
	if l.IsVertical() {
		return fmt.Sprintf("x = %g", l.Point1.X)
	}
	return fmt.Sprintf("y = %gx + %g", l.M(), l.C())
}
