package main

import (
	"fmt"
	"image/color"
	"math/rand"
	"os"

	geo "github.com/paulmach/go.geo"
	"github.com/samber/lo"
	kml "github.com/twpayne/go-kml/v2"
)

// RandLineColor - draw a random fully-opaque display color. KML packs
// colors as aabbggrr hex; the encoder takes care of the byte order.
func RandLineColor(rng *rand.Rand) color.RGBA {
	return color.RGBA{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
		A: 0xff,
	}
}

// CrossPlacemark - assemble a cross path into a placemark element with an
// inline line style, clamped to ground
func CrossPlacemark(name string, path *geo.PointSet, lineColor color.RGBA, lineWidth float64) kml.Element {
	coordinates := lo.Map(*path, func(p geo.Point, _ int) kml.Coordinate {
		return kml.Coordinate{Lon: p.Lng(), Lat: p.Lat()}
	})

	return kml.Placemark(
		kml.Name(name),
		kml.Style(
			kml.LineStyle(
				kml.Color(lineColor),
				kml.Width(lineWidth),
			),
		),
		kml.LineString(
			kml.AltitudeMode(kml.AltitudeModeClampToGround),
			kml.Coordinates(coordinates...),
		),
	)
}

// WriteCrossKML - write a KML document containing the given placemark
func WriteCrossKML(path string, placemark kml.Element) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	if err := kml.KML(placemark).WriteIndent(file, "", "  "); err != nil {
		return fmt.Errorf("write kml: %w", err)
	}

	return nil
}
