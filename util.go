package main

import (
	"path/filepath"
	"strconv"
	"strings"

	geo "github.com/paulmach/go.geo"
)

// suffix appended to the input base name for generated artifacts
const outputSuffix = "_centroid"

func IsPointSetClosed(points *geo.PointSet) bool {
	if points.Length() > 2 {
		return points.First().Equals(points.Last())
	}
	return false
}

// PointToLatLonString - format a point as "lat,lon" with 7 decimal places
func PointToLatLonString(point *geo.Point) string {
	var lat = strconv.FormatFloat(point.Lat(), 'f', 7, 64)
	var lon = strconv.FormatFloat(point.Lng(), 'f', 7, 64)

	return lat + "," + lon
}

// DeriveOutputPath - place a generated file next to the input file,
// appending a fixed suffix to the input's base name:
// /a/b/site.kml -> /a/b/site_centroid.kml
func DeriveOutputPath(inputPath, ext string) string {
	base := filepath.Base(inputPath)
	title := strings.TrimSuffix(base, filepath.Ext(base))

	return filepath.Join(filepath.Dir(inputPath), title+outputSuffix+ext)
}
