package main

import (
	"fmt"
	"image/color"
	"os"

	geo "github.com/paulmach/go.geo"
	geojson "github.com/paulmach/go.geojson"
	"github.com/samber/lo"
)

// CrossFeatureCollection - the cross path plus its centroid as a GeoJSON
// feature collection. The line carries simplestyle stroke properties so
// viewers render it close to the KML output.
func CrossFeatureCollection(name string, centroid *geo.Point, path *geo.PointSet, lineColor color.RGBA, lineWidth float64) *geojson.FeatureCollection {
	coordinates := lo.Map(*path, func(p geo.Point, _ int) []float64 {
		return []float64{p.Lng(), p.Lat()}
	})

	line := geojson.NewLineStringFeature(coordinates)
	line.SetProperty("name", name)
	line.SetProperty("stroke", fmt.Sprintf("#%02x%02x%02x", lineColor.R, lineColor.G, lineColor.B))
	line.SetProperty("stroke-width", lineWidth)

	point := geojson.NewPointFeature([]float64{centroid.Lng(), centroid.Lat()})
	point.SetProperty("name", name)

	collection := geojson.NewFeatureCollection()
	collection.AddFeature(line)
	collection.AddFeature(point)

	return collection
}

// WriteCrossGeoJSON - encode a feature collection to a file
func WriteCrossGeoJSON(path string, collection *geojson.FeatureCollection) error {
	data, err := collection.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode geojson: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	return nil
}
