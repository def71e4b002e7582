package main

import "math"

// approx meters per degree of latitude on WGS84; a degree of longitude
// shrinks by cos(latitude)
const metersPerDegree = 111320.0

// floor for cos(latitude) so longitude offsets stay finite near the poles
const cosLatEpsilon = 1e-12

// MetersToDegreeOffsets - convert a local east/north offset in meters to
// (lon, lat) degree deltas valid near the given latitude. This is a
// first-order flat-earth approximation, fine for offsets of a few tens
// of meters.
func MetersToDegreeOffsets(latDeg, eastMeters, northMeters float64) (dLon, dLat float64) {
	latRad := latDeg * math.Pi / 180.0

	dLat = northMeters / metersPerDegree
	dLon = eastMeters / (metersPerDegree * math.Max(math.Cos(latRad), cosLatEpsilon))

	return dLon, dLat
}
