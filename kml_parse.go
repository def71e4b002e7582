package main

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	geo "github.com/paulmach/go.geo"
)

// ErrNoPolygon - the document contains no polygon with at least three
// parseable coordinates
var ErrNoPolygon = errors.New("the kml file does not contain a polygon with coordinates")

// PolygonFeature - the first polygon found in a KML document, along with
// the name of the placemark containing it (may be empty)
type PolygonFeature struct {
	Name   string
	Points *geo.PointSet
}

// ParseFirstPolygon - locate the first <Polygon> element in a KML document
// and extract its outer boundary ring as a point set. Element names are
// matched on their local part only, so documents with or without the KML
// namespace (or with a prefix) all parse the same way.
func ParseFirstPolygon(r io.Reader) (*PolygonFeature, error) {
	decoder := xml.NewDecoder(r)

	var placemarkDepth int
	var placemarkName string
	var feature *PolygonFeature

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid kml: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "Placemark":
				placemarkDepth++
				placemarkName = ""
			case "name":
				if placemarkDepth < 1 {
					break
				}
				var name string
				if err := decoder.DecodeElement(&name, &t); err != nil {
					return nil, fmt.Errorf("invalid kml: %w", err)
				}
				placemarkName = strings.TrimSpace(name)

				// the <name> may follow the polygon within its placemark
				if feature != nil && feature.Name == "" {
					feature.Name = placemarkName
				}
			case "Polygon":
				if feature != nil {
					break
				}
				coordsText, err := readPolygonCoordinates(decoder)
				if err != nil {
					return nil, err
				}

				points := TokenizeCoordinates(coordsText)
				if points.Length() < 3 {
					return nil, ErrNoPolygon
				}

				feature = &PolygonFeature{Name: placemarkName, Points: points}
				if placemarkDepth < 1 {
					// bare polygon outside any placemark, no name to wait for
					return feature, nil
				}
			}
		case xml.EndElement:
			if t.Name.Local == "Placemark" {
				placemarkDepth--
				if feature != nil {
					return feature, nil
				}
			}
		}
	}

	if feature != nil {
		return feature, nil
	}
	return nil, ErrNoPolygon
}

// readPolygonCoordinates - consume the current <Polygon> subtree and
// return the text of its outer boundary <coordinates> element, falling
// back to the first <coordinates> found anywhere under the polygon.
func readPolygonCoordinates(decoder *xml.Decoder) (string, error) {
	var depth = 1
	var outerDepth int
	var firstCoords, outerCoords string

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return "", fmt.Errorf("invalid kml: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "outerBoundaryIs":
				outerDepth = depth
			case "coordinates":
				var text string
				if err := decoder.DecodeElement(&text, &t); err != nil {
					return "", fmt.Errorf("invalid kml: %w", err)
				}
				depth-- // DecodeElement consumed the closing tag

				text = strings.TrimSpace(text)
				if firstCoords == "" {
					firstCoords = text
				}
				if outerDepth > 0 && outerCoords == "" {
					outerCoords = text
				}
			}
		case xml.EndElement:
			depth--
			if outerDepth > 0 && depth < outerDepth {
				outerDepth = 0
			}
		}
	}

	if outerCoords != "" {
		return outerCoords, nil
	}
	return firstCoords, nil
}

// TokenizeCoordinates - parse a KML coordinate string into a point set.
// Tokens are "lon,lat[,alt]" separated by arbitrary whitespace; the
// altitude component is ignored and tokens that fail to parse as two
// numbers are silently skipped.
func TokenizeCoordinates(text string) *geo.PointSet {
	var points = geo.NewPointSet()

	for _, token := range strings.Fields(text) {
		parts := strings.Split(token, ",")
		if len(parts) < 2 {
			continue
		}

		lon, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			continue
		}
		lat, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			continue
		}

		points.Push(geo.NewPoint(lon, lat))
	}

	return points
}
