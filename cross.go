package main

import geo "github.com/paulmach/go.geo"

// BuildCrossPath - build a 7 point "+" shaped line path centered on the
// given point, with arms armMeters long in each compass direction. The
// center is revisited between strokes so a single line string renders as
// two independent crossing segments (north-south, then west-east) rather
// than a connected loop.
func BuildCrossPath(center *geo.Point, armMeters float64) *geo.PointSet {
	lon, lat := center.Lng(), center.Lat()
	dLon, dLat := MetersToDegreeOffsets(lat, armMeters, armMeters)

	var path = geo.NewPointSet()
	path.Push(geo.NewPoint(lon, lat))
	path.Push(geo.NewPoint(lon, lat+dLat)) // north
	path.Push(geo.NewPoint(lon, lat-dLat)) // south
	path.Push(geo.NewPoint(lon, lat))
	path.Push(geo.NewPoint(lon-dLon, lat)) // west
	path.Push(geo.NewPoint(lon+dLon, lat)) // east
	path.Push(geo.NewPoint(lon, lat))

	return path
}
