package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// default placemark name when the source polygon has none
const defaultFeatureName = "Centroid cross"

type Settings struct {
	KmlPath   string
	ArmMeters float64
	LineWidth float64
	GeoJSON   bool
}

func getSettings() Settings {

	// command line flags
	armMeters := flag.Float64("arm", 10.0, "cross arm length in meters")
	lineWidth := flag.Float64("width", 3.0, "line width of the cross style")
	writeGeoJSON := flag.Bool("geojson", false, "additionally write the cross as geojson")

	flag.Parse()
	args := flag.Args()

	var kmlPath string
	if len(args) > 0 {
		kmlPath = args[0]
	} else {
		kmlPath = promptForPath(os.Stdin)
	}

	if len(kmlPath) < 1 {
		log.Fatal("invalid args, you must specify a kml file")
	}

	return Settings{kmlPath, *armMeters, *lineWidth, *writeGeoJSON}
}

// promptForPath - interactive fallback when no path argument was given
func promptForPath(in io.Reader) string {
	fmt.Print("Enter kml location: ")

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func main() {

	// configuration
	config := getSettings()

	file, err := os.Open(config.KmlPath)
	if err != nil {
		log.Fatalf("error processing file: %v", err)
	}
	defer file.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if err := run(file, config, rng); err != nil {
		log.Fatalf("error processing file: %v", err)
	}
}

func run(in io.Reader, config Settings, rng *rand.Rand) error {

	feature, err := ParseFirstPolygon(in)
	if err != nil {
		return err
	}

	centroid, err := ComputePolygonCentroid(feature.Points)
	if err != nil {
		return err
	}

	// stdout in lat,lon format
	fmt.Println(PointToLatLonString(centroid))

	name := feature.Name
	if name == "" {
		name = defaultFeatureName
	}

	path := BuildCrossPath(centroid, config.ArmMeters)
	lineColor := RandLineColor(rng)

	kmlPath := DeriveOutputPath(config.KmlPath, ".kml")
	placemark := CrossPlacemark(name, path, lineColor, config.LineWidth)
	if err := WriteCrossKML(kmlPath, placemark); err != nil {
		return err
	}
	log.Info("centroid cross saved as ", kmlPath)

	if config.GeoJSON {
		jsonPath := DeriveOutputPath(config.KmlPath, ".geojson")
		collection := CrossFeatureCollection(name, centroid, path, lineColor, config.LineWidth)
		if err := WriteCrossGeoJSON(jsonPath, collection); err != nil {
			return err
		}
		log.Info("centroid cross saved as ", jsonPath)
	}

	return nil
}
