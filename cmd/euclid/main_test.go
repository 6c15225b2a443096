package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/euclid/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var plain = aurora.NewAurora(false)

func TestRunArea(t *testing.T) {
	var out bytes.Buffer
	runArea(strings.NewReader("0 0\n4 0\n0 3\n\n0 0\n0 1\n1 1\n1 0\n"), &out, plain)
	assert.Equal(t, `polygon 1: 3 vertices, counterclockwise
polygon 1 area: 6
polygon 1 perimeter: 12
polygon 2: 4 vertices, clockwise
polygon 2 area: 1
polygon 2 perimeter: 4
`, out.String())

	t.Run("degenerate", func(t *testing.T) {
		var out bytes.Buffer
		runArea(strings.NewReader("0 0\n2 0\n4 0\n"), &out, plain)
		assert.Equal(t, `polygon 1: 3 vertices, degenerate
polygon 1 area: 0
polygon 1 perimeter: 8
`, out.String())
	})
}

func TestRunScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shapes:\n  - name: v\n    vector: [0, 0]\n"), 0o644))

	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		runScene(path, "text", &out, plain)
		assert.Equal(t, `v magnitude: 0
v angle: NaN
v slope: NaN
v unit vector: undefined
v zero: true
`, out.String())
	})

	t.Run("geojson", func(t *testing.T) {
		var out bytes.Buffer
		runScene(path, "geojson", &out, plain)
		assert.Contains(t, out.String(), `"FeatureCollection"`)
		assert.Contains(t, out.String(), `"vector"`)
	})
}

func TestPrintEntry(t *testing.T) {
	var out bytes.Buffer
	printEntry(&out, plain, scene.Entry{Subject: "lines", Property: "intercept", Value: scene.Location{}})
	assert.Equal(t, "lines intercept: undefined\n", out.String())

	out.Reset()
	printEntry(&out, aurora.NewAurora(true), scene.Entry{Subject: "s", Property: "area", Value: scene.Scalar(2)})
	assert.Contains(t, out.String(), "\x1b[")
}
