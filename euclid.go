// A small planar Euclidean geometry package for Go.
//
// This package provides mutable value types for points, vectors, lines, line
// segments, polygons and circles, along with free functions for
// intersections, reflections and angles between them.
//
// Transform methods mutate their receiver and return it, so calls can be
// chained:
//
//	p := euclid.NewPoint(1, 0).Translate(1, 0).Rotate(math.Pi / 2)
//
// Composite types (Line, LineSegment, Polygon, Circle) always store their own
// copies of the points they are built from. Mutating a point after handing it
// to a constructor never changes the composite.
//
// Results that are mathematically undefined are never errors. Scalars come
// back as NaN, point and vector results come back as nil, and sets of
// intersection points come back empty. All comparisons are exact; there is no
// tolerance anywhere in this package.
package euclid
