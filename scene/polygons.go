package scene

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/euclid"
	"github.com/osuushi/euclid/internal"
	"github.com/pkg/errors"
)

// ReadPolygons reads polygons in a plain text format: newline separated points
// in the form "x y", with each polygon separated by an extra blank line.
func ReadPolygons(in io.Reader) (result []*euclid.Polygon, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	scanner := bufio.NewScanner(in)
	var points []*euclid.Point
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				result = append(result, euclid.NewPolygon(points...))
				points = nil
			}
			continue
		}

		points = append(points, parsePoint(lineNumber, line))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygons")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		result = append(result, euclid.NewPolygon(points...))
	}
	return result, nil
}

func parsePoint(lineNumber int, line string) *euclid.Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		internal.Fatalf("line %d: expected \"x y\", got %q", lineNumber, line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		internal.Wrapf(err, "line %d: invalid x value %q", lineNumber, parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		internal.Wrapf(err, "line %d: invalid y value %q", lineNumber, parts[1])
	}
	return euclid.NewPoint(x, y)
}
