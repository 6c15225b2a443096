package euclid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorCalculatedProperties(t *testing.T) {
	v := NewVector(3, 4)
	assert.False(t, v.IsZeroVector())
	assert.Equal(t, 5.0, v.Magnitude())
	assert.Equal(t, 4.0/3.0, v.Slope())
	assert.Equal(t, math.Atan2(4, 3), v.Angle())
	assert.Equal(t, &Vector{0.6, 0.8}, v.UnitVector())

	t.Run("unit vector is a new vector", func(t *testing.T) {
		unit := v.UnitVector()
		unit.Scale(10)
		assert.Equal(t, &Vector{3, 4}, v)
	})

	t.Run("vertical", func(t *testing.T) {
		v := NewVector(0, -2)
		assertNaN(t, v.Slope())
		assert.Equal(t, -math.Pi/2, v.Angle())
		assert.Equal(t, &Vector{0, -1}, v.UnitVector())
	})
}

func TestZeroVector(t *testing.T) {
	v := NewVector(0, 0)
	assert.True(t, v.IsZeroVector())
	assert.Nil(t, v.UnitVector())
	assertNaN(t, v.Angle())
	assertNaN(t, v.Slope())
	assert.Equal(t, 0.0, v.Magnitude())

	t.Run("tiny is not zero", func(t *testing.T) {
		v := NewVector(1e-300, 0)
		assert.False(t, v.IsZeroVector())
		assert.NotNil(t, v.UnitVector())
	})
}

func TestVectorTransforms(t *testing.T) {
	t.Run("negative", func(t *testing.T) {
		v := NewVector(1, -2)
		assert.Same(t, v, v.Negative())
		assert.Equal(t, &Vector{-1, 2}, v)
	})

	t.Run("flip and scale", func(t *testing.T) {
		v := NewVector(1, 2)
		assert.Equal(t, &Vector{-1, 2}, v.FlipX())
		assert.Equal(t, &Vector{-1, -2}, v.FlipY())
		assert.Equal(t, &Vector{-2, -4}, v.Scale(2))
		assert.Equal(t, &Vector{-1, -4}, v.ScaleX(0.5))
		assert.Equal(t, &Vector{-1, 4}, v.ScaleY(-1))
	})

	t.Run("rotate", func(t *testing.T) {
		v := NewVector(2, 0).Rotate(math.Pi)
		assert.InDelta(t, -2, v.X, Epsilon)
		assert.InDelta(t, 0, v.Y, Epsilon)
		assert.InDelta(t, 2, v.Magnitude(), Epsilon)
	})

	t.Run("clone", func(t *testing.T) {
		v := NewVector(1, 2)
		clone := v.Clone()
		assert.NotSame(t, v, clone)
		clone.Negative()
		assert.Equal(t, &Vector{1, 2}, v)
	})
}
