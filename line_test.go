package euclid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLine(t *testing.T) {
	t.Run("general", func(t *testing.T) {
		l := NewLine(&Point{1, 3}, &Point{3, 7})
		assert.Equal(t, 2.0, l.M())
		assert.Equal(t, 1.0, l.C())
		assert.Equal(t, &Point{0, 1}, l.YIntercept())
		assert.Equal(t, &Point{-0.5, 0}, l.XIntercept())
		assert.False(t, l.IsVertical())
		assert.False(t, l.IsHorizontal())
		assert.Equal(t, "y = 2x + 1", l.String())
	})

	t.Run("vertical", func(t *testing.T) {
		l := NewLine(&Point{2, -1}, &Point{2, 5})
		assert.True(t, l.IsVertical())
		assert.False(t, l.IsHorizontal())
		assertNaN(t, l.M())
		assertNaN(t, l.C())
		assert.Nil(t, l.YIntercept())
		assert.Equal(t, &Point{2, 0}, l.XIntercept())
		assert.Equal(t, "x = 2", l.String())
	})

	t.Run("horizontal", func(t *testing.T) {
		l := NewLine(&Point{-1, 4}, &Point{6, 4})
		assert.True(t, l.IsHorizontal())
		assert.False(t, l.IsVertical())
		assert.Equal(t, 0.0, l.M())
		assert.Equal(t, 4.0, l.C())
		assert.Equal(t, &Point{0, 4}, l.YIntercept())
		assert.Nil(t, l.XIntercept())
	})

	t.Run("horizontal on the x axis has no x intercept", func(t *testing.T) {
		l := NewLine(&Point{-1, 0}, &Point{1, 0})
		assert.Nil(t, l.XIntercept())
	})

	t.Run("degenerate is vertical", func(t *testing.T) {
		l := NewLine(&Point{1, 1}, &Point{1, 1})
		assert.True(t, l.IsVertical())
	})
}

func TestLineOwnsItsPoints(t *testing.T) {
	p1 := NewPoint(0, 0)
	p2 := NewPoint(1, 1)
	l := NewLine(p1, p2)
	p1.Translate(5, 0)
	p2.Update(1, 10)
	assert.Equal(t, Point{0, 0}, l.Point1)
	assert.Equal(t, Point{1, 1}, l.Point2)
	assert.Equal(t, 1.0, l.M())
}

func TestLineIsDerivedOnAccess(t *testing.T) {
	l := NewLine(&Point{0, 0}, &Point{1, 1})
	assert.Equal(t, 1.0, l.M())
	l.Point2.Update(0, 1)
	assert.True(t, l.IsVertical())
}

func TestLineSegment(t *testing.T) {
	s := NewLineSegment(&Point{1, 1}, &Point{4, 5})
	assert.Equal(t, 3.0, s.Dx())
	assert.Equal(t, 4.0, s.Dy())
	assert.Equal(t, 5.0, s.Length())
	assert.Equal(t, 4.0/3.0, s.Slope())
	assert.Equal(t, &Point{2.5, 3}, s.Midpoint())
	assert.Equal(t, &Vector{3, 4}, s.Vector())

	t.Run("vertical", func(t *testing.T) {
		s := NewLineSegment(&Point{1, 1}, &Point{1, -3})
		assertNaN(t, s.Slope())
		assert.Equal(t, 4.0, s.Length())
		assert.True(t, s.Line().IsVertical())
	})

	t.Run("line", func(t *testing.T) {
		l := s.Line()
		assert.Equal(t, s.Slope(), l.M())
		l.Point1.Translate(10, 10)
		assert.Equal(t, Point{1, 1}, s.Point1)
	})

	t.Run("owns its points", func(t *testing.T) {
		p := NewPoint(0, 0)
		s := NewLineSegment(p, &Point{2, 0})
		p.Translate(1, 1)
		assert.Equal(t, 2.0, s.Length())
	})
}
