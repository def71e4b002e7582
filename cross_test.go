package main

import (
	"math"
	"testing"

	"github.com/paulmach/go.geo"
	"github.com/stretchr/testify/assert"
)

func TestBuildCrossPathShape(t *testing.T) {

	center := geo.NewPoint(10, 20)
	path := BuildCrossPath(center, 10)

	assert.Equal(t, 7, path.Length())

	// the pen returns to the center between strokes
	for _, i := range []int{0, 3, 6} {
		assert.Equal(t, 10.0, path.GetAt(i).Lng())
		assert.Equal(t, 20.0, path.GetAt(i).Lat())
	}

	north, south := path.GetAt(1), path.GetAt(2)
	west, east := path.GetAt(4), path.GetAt(5)

	// vertical arms share the center longitude
	assert.Equal(t, 10.0, north.Lng())
	assert.Equal(t, 10.0, south.Lng())
	assert.Greater(t, north.Lat(), 20.0)
	assert.Less(t, south.Lat(), 20.0)

	// horizontal arms share the center latitude
	assert.Equal(t, 20.0, west.Lat())
	assert.Equal(t, 20.0, east.Lat())
	assert.Less(t, west.Lng(), 10.0)
	assert.Greater(t, east.Lng(), 10.0)

	// arms are symmetric about the center
	assert.InDelta(t, north.Lat()-20.0, 20.0-south.Lat(), 1e-15)
	assert.InDelta(t, east.Lng()-10.0, 10.0-west.Lng(), 1e-15)
}

func TestBuildCrossPathArmLengths(t *testing.T) {

	centroid, err := ComputePolygonCentroid(squareRing(4))
	assert.NoError(t, err)
	assert.InDelta(t, 2.0, centroid.Lng(), 1e-9)
	assert.InDelta(t, 2.0, centroid.Lat(), 1e-9)

	path := BuildCrossPath(centroid, 10)

	dLat := 10.0 / 111320.0
	dLon := 10.0 / (111320.0 * math.Cos(2.0*math.Pi/180.0))

	assert.InDelta(t, 2.0+dLat, path.GetAt(1).Lat(), 1e-12)
	assert.InDelta(t, 2.0-dLat, path.GetAt(2).Lat(), 1e-12)
	assert.InDelta(t, 2.0-dLon, path.GetAt(4).Lng(), 1e-12)
	assert.InDelta(t, 2.0+dLon, path.GetAt(5).Lng(), 1e-12)
}

func squareRing(side float64) *geo.PointSet {
	var ring = geo.NewPointSet()
	ring.Push(geo.NewPoint(0, 0))
	ring.Push(geo.NewPoint(side, 0))
	ring.Push(geo.NewPoint(side, side))
	ring.Push(geo.NewPoint(0, side))
	return ring
}
