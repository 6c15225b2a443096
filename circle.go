package euclid

import "math"

// The radius is not validated. A negative radius is accepted, and simply gives
// a negative diameter and circumference.
type Circle struct {
	Center Point
	Radius float64
}

func NewCircle(center *Point, radius float64) *Circle {
	return &Circle{Center: *center.Clone(), Radius: radius}
}

func (c *Circle) Diameter() float64 {
	return c.Radius * 2
}

func (c *Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c *Circle) Circumference() float64 {
	return math.Pi * 2 * c.Radius
}

func (c *Circle) Translate(dx, dy float64) *Circle {
	c.Center.Translate(dx, dy)
	return c
}

func (c *Circle) SetRadius(r float64) *Circle {
	c.Radius = r
	return c
}

// Points on the circumference count as inside.
func (c *Circle) Contains(p *Point) bool {
	return math.Hypot(p.X-c.Center.X, p.Y-c.Center.Y) <= c.Radius
}
