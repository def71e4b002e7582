package main

import (
	"fmt"
	"math"

	geo "github.com/paulmach/go.geo"
)

// ring areas below this are treated as zero
const degenerateAreaEpsilon = 1e-12

// InsufficientVerticesError - a polygon ring had fewer than three
// vertices after removing a trailing duplicate of the first point
type InsufficientVerticesError struct {
	Count int
}

func (e *InsufficientVerticesError) Error() string {
	return fmt.Sprintf("polygon requires at least 3 vertices, got %d", e.Count)
}

// ComputePolygonCentroid - compute the area-weighted centroid of a simple
// polygon ring using the shoelace formula. The ring may be given open or
// explicitly closed and in either winding order; the area sign cancels out
// of the quotient. Degenerate (zero area) rings fall back to the
// arithmetic mean of the vertices instead of dividing by a near-zero area.
func ComputePolygonCentroid(ps *geo.PointSet) (*geo.Point, error) {

	points := *ps
	if IsPointSetClosed(ps) {
		points = points[:len(points)-1]
	}

	n := len(points)
	if n < 3 {
		return nil, &InsufficientVerticesError{Count: n}
	}

	var area, cx, cy float64
	for i := 0; i < n; i++ {
		p1 := points[i]
		p2 := points[(i+1)%n]

		cross := p1.X()*p2.Y() - p2.X()*p1.Y()
		area += cross
		cx += (p1.X() + p2.X()) * cross
		cy += (p1.Y() + p2.Y()) * cross
	}
	area *= 0.5

	// collinear or otherwise degenerate ring
	if math.Abs(area) < degenerateAreaEpsilon {
		var sx, sy float64
		for i := 0; i < n; i++ {
			sx += points[i].X()
			sy += points[i].Y()
		}
		return geo.NewPoint(sx/float64(n), sy/float64(n)), nil
	}

	return geo.NewPoint(cx/(6.0*area), cy/(6.0*area)), nil
}
