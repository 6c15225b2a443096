package euclid

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

// All of the calculated properties below are relative to the origin.

func (p *Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Slope of the line from the origin through the point. This is plain float
// division, so a point on the y axis gives ±Inf, or NaN at the origin itself.
func (p *Point) Slope() float64 {
	return p.Y / p.X
}

func (p *Point) Distance() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p *Point) Translate(dx, dy float64) *Point {
	p.X += dx
	p.Y += dy
	return p
}

// Rotate counterclockwise about the origin by angle radians.
func (p *Point) Rotate(angle float64) *Point {
	p.X, p.Y = rotate(p.X, p.Y, angle)
	return p
}

// Reflect across the y axis.
func (p *Point) FlipX() *Point {
	p.X = -p.X
	return p
}

// Reflect across the x axis.
func (p *Point) FlipY() *Point {
	p.Y = -p.Y
	return p
}

func (p *Point) Scale(factor float64) *Point {
	p.X *= factor
	p.Y *= factor
	return p
}

func (p *Point) ScaleX(factor float64) *Point {
	p.X *= factor
	return p
}

func (p *Point) ScaleY(factor float64) *Point {
	p.Y *= factor
	return p
}

// Set both coordinates absolutely.
func (p *Point) Update(x, y float64) *Point {
	p.X = x
	p.Y = y
	return p
}

func (p *Point) Clone() *Point {
	return &Point{X: p.X, Y: p.Y}
}

func (p *Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p *Point) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}
