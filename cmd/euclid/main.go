package main

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/euclid"
	"github.com/osuushi/euclid/dbg"
	"github.com/osuushi/euclid/scene"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end for the geometry package. Each command either reads
// shapes from input or takes coordinates as arguments, and prints the results.
// Undefined results are highlighted rather than treated as errors.
//
// Coordinates that start with a minus sign look like flags, so pass them after
// "--", as in: euclid reflect -- 1 2 -3 0 -3 1

var (
	app     = kingpin.New("euclid", "Planar geometry calculations.")
	verbose = app.Flag("verbose", "Log debug output.").Short('v').Envar("EUCLID_VERBOSE").Bool()
	noColor = app.Flag("no-color", "Disable colored output.").Envar("EUCLID_NO_COLOR").Bool()

	areaCmd = app.Command("area", "Read polygons from stdin and print their areas. Points are \"x y\" lines, with a blank line between polygons.")

	sceneCmd    = app.Command("scene", "Report on the shapes in a YAML scene file.")
	sceneFile   = sceneCmd.Arg("file", "Scene file.").Required().ExistingFile()
	sceneFormat = sceneCmd.Flag("format", "Output format.").Default("text").Envar("EUCLID_FORMAT").Enum("text", "geojson")

	interceptCmd    = app.Command("intersect-lines", "Intersect the line through the first two points with the line through the last two.")
	interceptCoords = interceptCmd.Arg("coordinates", "x1 y1 x2 y2 x3 y3 x4 y4").Required().Float64List()

	reflectCmd    = app.Command("reflect", "Reflect a point in the line through two other points.")
	reflectCoords = reflectCmd.Arg("coordinates", "px py x1 y1 x2 y2").Required().Float64List()

	circleLineCmd    = app.Command("circle-line", "Intersect a circle with the line through two points.")
	circleLineCoords = circleLineCmd.Arg("coordinates", "cx cy r x1 y1 x2 y2").Required().Float64List()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	log.SetOutput(os.Stderr)
	log.SetLevel(log.InfoLevel)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	au := aurora.NewAurora(!*noColor)

	switch command {
	case areaCmd.FullCommand():
		runArea(os.Stdin, os.Stdout, au)
	case sceneCmd.FullCommand():
		runScene(*sceneFile, *sceneFormat, os.Stdout, au)
	case interceptCmd.FullCommand():
		c := requireCoords(*interceptCoords, 8)
		line1 := euclid.NewLine(euclid.NewPoint(c[0], c[1]), euclid.NewPoint(c[2], c[3]))
		line2 := euclid.NewLine(euclid.NewPoint(c[4], c[5]), euclid.NewPoint(c[6], c[7]))
		log.Debugf("intersecting %s with %s", line1, line2)
		printEntry(os.Stdout, au, scene.Entry{
			Subject:  "lines",
			Property: "intercept",
			Value:    scene.Location{Point: euclid.InterceptOfLines(line1, line2)},
		})
	case reflectCmd.FullCommand():
		c := requireCoords(*reflectCoords, 6)
		point := euclid.NewPoint(c[0], c[1])
		line := euclid.NewLine(euclid.NewPoint(c[2], c[3]), euclid.NewPoint(c[4], c[5]))
		log.Debugf("reflecting %s in %s", point, line)
		printEntry(os.Stdout, au, scene.Entry{
			Subject:  point.String(),
			Property: "reflection",
			Value:    scene.Location{Point: euclid.NewPointReflectInLine(point, line)},
		})
	case circleLineCmd.FullCommand():
		c := requireCoords(*circleLineCoords, 7)
		circle := euclid.NewCircle(euclid.NewPoint(c[0], c[1]), c[2])
		line := euclid.NewLine(euclid.NewPoint(c[3], c[4]), euclid.NewPoint(c[5], c[6]))
		log.Debugf("intersecting circle %s r=%g with %s", &circle.Center, circle.Radius, line)
		printEntry(os.Stdout, au, scene.Entry{
			Subject:  "circle × line",
			Property: "intersection",
			Value:    scene.Locations(euclid.IntersectionOfCircleAndLine(circle, line)),
		})
	}
}

func runArea(in io.Reader, out io.Writer, au aurora.Aurora) {
	polygons, err := scene.ReadPolygons(in)
	if err != nil {
		log.Fatalf("Could not read polygons: %v", err)
	}
	log.Debugf("Read %d polygons", len(polygons))

	for i, polygon := range polygons {
		subject := fmt.Sprintf("polygon %d", i+1)
		fmt.Fprintf(out, "%s: %d vertices, %s\n", au.Bold(subject), polygon.NumberOfVertices(), winding(polygon))
		printEntry(out, au, scene.Entry{Subject: subject, Property: "area", Value: scene.Scalar(polygon.Area())})
		printEntry(out, au, scene.Entry{Subject: subject, Property: "perimeter", Value: scene.Scalar(polygon.Perimeter())})
	}
}

// Collinear and coincident vertices have no winding.
func winding(polygon *euclid.Polygon) string {
	switch area := polygon.SignedArea(); {
	case area > 0:
		return "counterclockwise"
	case area < 0:
		return "clockwise"
	}
	return "degenerate"
}

func runScene(path string, format string, out io.Writer, au aurora.Aurora) {
	s, err := scene.LoadFile(path)
	if err != nil {
		log.Fatalf("Could not load scene: %v", err)
	}
	log.WithField("shapes", len(s.Shapes)).Debug("Loaded scene")
	log.Debug(dbg.Dump(s))

	if format == "geojson" {
		data, err := s.GeoJSON()
		if err != nil {
			log.Fatalf("Could not encode scene: %v", err)
		}
		fmt.Fprintln(out, string(data))
		return
	}

	for _, entry := range s.Report() {
		printEntry(out, au, entry)
	}
}

func printEntry(out io.Writer, au aurora.Aurora, entry scene.Entry) {
	var value aurora.Value
	if entry.Value.Undefined() {
		value = au.Red(entry.Value.String())
	} else {
		value = au.Green(entry.Value.String())
	}
	fmt.Fprintf(out, "%s %s: %s\n", entry.Subject, au.Cyan(entry.Property), value)
}

func requireCoords(coords []float64, n int) []float64 {
	if len(coords) != n {
		log.Fatalf("Expected %d coordinates, got %d", n, len(coords))
	}
	return coords
}
