// Package scene loads collections of named shapes from YAML documents, and
// reports on their properties and on how they interact.
package scene

import (
	"io"
	"os"
	"reflect"

	"github.com/osuushi/euclid"
	"github.com/osuushi/euclid/dbg"
	"github.com/osuushi/euclid/internal"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Kind string

const (
	KindPoint   Kind = "point"
	KindVector  Kind = "vector"
	KindLine    Kind = "line"
	KindSegment Kind = "segment"
	KindPolygon Kind = "polygon"
	KindCircle  Kind = "circle"
)

// A Shape pairs a name with one geometry value. Geometry is always one of
// *euclid.Point, *euclid.Vector, *euclid.Line, *euclid.LineSegment,
// *euclid.Polygon or *euclid.Circle.
type Shape struct {
	Name     string
	Geometry interface{}
}

// Kind is empty if Geometry is not one of the supported types.
func (s *Shape) Kind() Kind {
	return kindOf(s.Geometry)
}

func kindOf(geometry interface{}) Kind {
	switch geometry.(type) {
	case *euclid.Point:
		return KindPoint
	case *euclid.Vector:
		return KindVector
	case *euclid.Line:
		return KindLine
	case *euclid.LineSegment:
		return KindSegment
	case *euclid.Polygon:
		return KindPolygon
	case *euclid.Circle:
		return KindCircle
	}
	return ""
}

type Scene struct {
	Shapes []*Shape
	names  dbg.Namer
}

// Add a shape to the scene. If name is empty, the shape gets a readable
// generated name instead, unique within this scene.
func (s *Scene) Add(name string, geometry interface{}) (*Shape, error) {
	if kindOf(geometry) == "" {
		return nil, errors.Errorf("unsupported geometry %T", geometry)
	}
	if v := reflect.ValueOf(geometry); v.IsNil() {
		return nil, errors.Errorf("nil %T geometry", geometry)
	}

	shape := &Shape{Name: name, Geometry: geometry}
	if shape.Name == "" {
		shape.Name = s.names.Name(geometry)
	}
	s.Shapes = append(s.Shapes, shape)
	return shape, nil
}

// Shapes of the given kind, in scene order.
func (s *Scene) OfKind(kind Kind) []*Shape {
	var result []*Shape
	for _, shape := range s.Shapes {
		if shape.Kind() == kind {
			result = append(result, shape)
		}
	}
	return result
}

// Load decodes a YAML scene document. An empty document is an empty scene.
func Load(r io.Reader) (result *Scene, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	var doc document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding scene")
	}

	result = &Scene{}
	for i, d := range doc.Shapes {
		if _, err := result.Add(d.Name, d.geometry(i)); err != nil {
			internal.Wrapf(err, "shape %d", i)
		}
	}
	return result, nil
}

func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening scene")
	}
	defer f.Close()

	result, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return result, nil
}
