// Package osm extracts populated places from OpenStreetMap PBF extracts.
package osm

import (
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
)

// CityNode is a populated place parsed from OSM data.
type CityNode struct {
	Name       string
	Country    string
	Lat        float64
	Lon        float64
	Population int64 // 0 when the tag is missing or unparsable
}

// BBox is a geographic bounding box filter.
type BBox struct {
	MinLat, MinLng, MaxLat, MaxLng float64
}

// IsZero returns true for the zero-value bbox (no filtering).
func (b BBox) IsZero() bool {
	return b.MinLat == 0 && b.MinLng == 0 && b.MaxLat == 0 && b.MaxLng == 0
}

// Contains reports whether the point lies inside the box.
func (b BBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// ExtractOptions configures the city extractor.
type ExtractOptions struct {
	BBox          BBox  // if non-zero, keep only places inside the box
	MinPopulation int64 // if positive, keep only places at least this large
}

// placeValues lists the place tag values that count as a city for routing.
var placeValues = map[string]bool{
	"city": true,
	"town": true,
}

// keepPlace returns the place name if the node is a named city or town.
func keepPlace(tags osm.Tags) (string, bool) {
	if !placeValues[tags.Find("place")] {
		return "", false
	}
	name := tags.Find("name:en")
	if name == "" {
		name = tags.Find("name")
	}
	name = strings.TrimSpace(name)
	return name, name != ""
}

// parsePopulation reads the population tag, tolerating thousands separators.
func parsePopulation(tags osm.Tags) int64 {
	raw := tags.Find("population")
	if raw == "" {
		return 0
	}
	raw = strings.NewReplacer(",", "", " ", "").Replace(raw)
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ExtractCities reads an OSM PBF stream and returns its named cities and
// towns. Only node objects are scanned; place polygons are out of scope.
func ExtractCities(ctx context.Context, r io.Reader, opts ...ExtractOptions) ([]CityNode, error) {
	var opt ExtractOptions
	if len(opts) > 0 {
		opt = opts[0]
	}
	useBBox := !opt.BBox.IsZero()

	scanner := osmpbf.New(ctx, r, 1)
	defer scanner.Close()
	scanner.SkipWays = true
	scanner.SkipRelations = true

	var cities []CityNode
	var filtered int
	for scanner.Scan() {
		n, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}

		name, ok := keepPlace(n.Tags)
		if !ok {
			continue
		}
		if useBBox && !opt.BBox.Contains(n.Lat, n.Lon) {
			filtered++
			continue
		}

		pop := parsePopulation(n.Tags)
		if opt.MinPopulation > 0 && pop < opt.MinPopulation {
			filtered++
			continue
		}

		cities = append(cities, CityNode{
			Name:       name,
			Country:    strings.TrimSpace(n.Tags.Find("is_in:country")),
			Lat:        n.Lat,
			Lon:        n.Lon,
			Population: pop,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan places: %w", err)
	}

	if filtered > 0 {
		log.Printf("Filtered out %d places (bbox/population)", filtered)
	}
	return cities, nil
}
