package scene

import (
	json "github.com/goccy/go-json"
	"github.com/osuushi/euclid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

type goJSONMarshaler struct{}

func (goJSONMarshaler) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func init() {
	geojson.CustomJSONMarshaler = goJSONMarshaler{}
}

// FeatureCollection converts every shape in the scene into a GeoJSON feature,
// carrying its name and kind as properties. GeoJSON has no circles or infinite
// lines, so circles become their center point with a radius property, and
// lines become the segment between their two defining points, marked infinite.
// Vectors are drawn from the origin.
func (s *Scene) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, shape := range s.Shapes {
		if feature := shape.Feature(); feature != nil {
			fc.Append(feature)
		}
	}
	return fc
}

// Feature is nil for a shape whose geometry is not a supported type.
func (s *Shape) Feature() *geojson.Feature {
	var feature *geojson.Feature
	switch g := s.Geometry.(type) {
	case *euclid.Point:
		feature = geojson.NewFeature(g.Orb())
	case *euclid.Vector:
		feature = geojson.NewFeature(orb.LineString{orb.Point{0, 0}, g.Orb()})
	case *euclid.Line:
		feature = geojson.NewFeature(orb.LineString{g.Point1.Orb(), g.Point2.Orb()})
		feature.Properties["infinite"] = true
	case *euclid.LineSegment:
		feature = geojson.NewFeature(g.Orb())
	case *euclid.Polygon:
		feature = geojson.NewFeature(orb.Polygon{g.Ring()})
	case *euclid.Circle:
		feature = geojson.NewFeature(g.Center.Orb())
		feature.Properties["radius"] = g.Radius
	default:
		return nil
	}
	feature.Properties["name"] = s.Name
	feature.Properties["kind"] = string(s.Kind())
	return feature
}

// GeoJSON encodes the scene's feature collection as indented JSON.
func (s *Scene) GeoJSON() ([]byte, error) {
	return json.MarshalIndent(s.FeatureCollection(), "", "  ")
}
