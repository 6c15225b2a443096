package euclid

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// A free displacement in the plane. Vectors share their shape with Point, but
// not their operations: a vector has a magnitude and a direction, and no
// location.
type Vector struct {
	X float64
	Y float64
}

func NewVector(x, y float64) *Vector {
	return &Vector{X: x, Y: y}
}

// Exact comparison against zero. A vector that is merely tiny is not zero.
func (v *Vector) IsZeroVector() bool {
	return v.X == 0 && v.Y == 0
}

// Direction of the vector in radians. NaN for the zero vector, which has no
// direction.
func (v *Vector) Angle() float64 {
	if v.IsZeroVector() {
		return math.NaN()
	}
	return math.Atan2(v.Y, v.X)
}

// NaN for the zero vector and for vertical vectors.
func (v *Vector) Slope() float64 {
	if v.IsZeroVector() || v.X == 0 {
		return math.NaN()
	}
	return v.Y / v.X
}

func (v *Vector) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Returns a new vector of length one in the same direction, or nil for the zero
// vector. Each component is divided by the magnitude directly rather than
// going through Scale, which would multiply by a rounded reciprocal.
func (v *Vector) UnitVector() *Vector {
	if v.IsZeroVector() {
		return nil
	}
	magnitude := v.Magnitude()
	return &Vector{X: v.X / magnitude, Y: v.Y / magnitude}
}

func (v *Vector) Rotate(angle float64) *Vector {
	v.X, v.Y = rotate(v.X, v.Y, angle)
	return v
}

func (v *Vector) FlipX() *Vector {
	v.X = -v.X
	return v
}

func (v *Vector) FlipY() *Vector {
	v.Y = -v.Y
	return v
}

// Point the vector the opposite way.
func (v *Vector) Negative() *Vector {
	return v.FlipX().FlipY()
}

func (v *Vector) Scale(factor float64) *Vector {
	v.X *= factor
	v.Y *= factor
	return v
}

func (v *Vector) ScaleX(factor float64) *Vector {
	v.X *= factor
	return v
}

func (v *Vector) ScaleY(factor float64) *Vector {
	v.Y *= factor
	return v
}

func (v *Vector) Clone() *Vector {
	return &Vector{X: v.X, Y: v.Y}
}

func (v *Vector) String() string {
	return fmt.Sprintf("<%g, %g>", v.X, v.Y)
}

// The vector as an orb point, treating it as a displacement from the origin.
func (v *Vector) Orb() orb.Point {
	return orb.Point{v.X, v.Y}
}
