package main

import (
	"bytes"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/go.geo"
	"github.com/stretchr/testify/assert"
	kml "github.com/twpayne/go-kml/v2"
)

func TestRandLineColorIsOpaque(t *testing.T) {

	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		c := RandLineColor(rng)
		assert.Equal(t, uint8(0xff), c.A)
	}
}

func TestCrossPlacemarkRendering(t *testing.T) {

	path := BuildCrossPath(geo.NewPoint(10, 20), 10)
	lineColor := color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}

	placemark := CrossPlacemark("Site A", path, lineColor, 3)

	var buf bytes.Buffer
	err := kml.KML(placemark).Write(&buf)
	assert.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "<name>Site A</name>")
	assert.Contains(t, out, "<LineString>")
	assert.Contains(t, out, "<altitudeMode>clampToGround</altitudeMode>")
	assert.Contains(t, out, "<width>3</width>")

	// KML packs colors as aabbggrr
	assert.Contains(t, out, "<color>ff332211</color>")

	// all seven path points survive, center first
	coords := out[strings.Index(out, "<coordinates>"):strings.Index(out, "</coordinates>")]
	assert.Equal(t, 7, len(strings.Fields(strings.TrimPrefix(coords, "<coordinates>"))))
	assert.Contains(t, coords, "10,20")
}

func TestWriteCrossKML(t *testing.T) {

	dir := t.TempDir()
	outPath := filepath.Join(dir, "site_centroid.kml")

	path := BuildCrossPath(geo.NewPoint(10, 20), 10)
	placemark := CrossPlacemark("Site A", path, color.RGBA{R: 1, G: 2, B: 3, A: 0xff}, 3)

	err := WriteCrossKML(outPath, placemark)
	assert.NoError(t, err)

	data, err := os.ReadFile(outPath)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "<kml xmlns=\"http://www.opengis.net/kml/2.2\">")
	assert.Contains(t, string(data), "<LineString>")
}
