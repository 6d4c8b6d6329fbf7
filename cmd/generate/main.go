package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"flight_router/pkg/dataset"
	"flight_router/pkg/geo"
	"flight_router/pkg/osm"
)

// hubCoords are the coordinates distances are measured against. They must
// agree with the hub rows of the generated table.
var hubCoords = map[string][2]float64{
	"Doha":      {25.2854, 51.5310},
	"Dubai":     {25.2048, 55.2708},
	"Abu Dhabi": {24.4539, 54.3773},
}

func main() {
	output := flag.String("output", "airport_distances.csv", "Output CSV path")
	input := flag.String("input", "", "Optional .osm.pbf extract to pull cities from (default: bundled list)")
	bbox := flag.String("bbox", "", "Bounding box filter for -input: minLat,minLng,maxLat,maxLng")
	minPop := flag.Int64("min-population", 100000, "Minimum population for cities from -input")
	flag.Parse()

	start := time.Now()

	var cities []builtinCity
	if *input == "" {
		cities = builtinCities
		log.Printf("Using bundled city list (%d cities)", len(cities))
	} else {
		var err error
		cities, err = citiesFromPBF(*input, *bbox, *minPop)
		if err != nil {
			log.Fatalf("Failed to extract cities: %v", err)
		}
		log.Printf("Extracted %d cities from %s", len(cities), *input)
	}

	rows := make([]dataset.Row, 0, len(cities))
	for _, c := range cities {
		rows = append(rows, dataset.Row{
			City:         c.Name,
			Country:      c.Country,
			Latitude:     c.Lat,
			Longitude:    c.Lon,
			DistDoha:     hubDistance(c, "Doha"),
			DistDubai:    hubDistance(c, "Dubai"),
			DistAbuDhabi: hubDistance(c, "Abu Dhabi"),
		})
	}

	table := dataset.New(ensureHubs(rows))
	if err := dataset.Write(*output, table); err != nil {
		log.Fatalf("Failed to write %s: %v", *output, err)
	}

	log.Printf("Wrote %d cities to %s in %s", table.Len(), *output, time.Since(start).Round(time.Millisecond))
}

func hubDistance(c builtinCity, hub string) float64 {
	coords := hubCoords[hub]
	return geo.HaversineRounded(c.Lat, c.Lon, coords[0], coords[1])
}

// ensureHubs prepends any hub city missing from the rows. Every airline's hub
// must exist in the table or that airline contributes no edges.
func ensureHubs(rows []dataset.Row) []dataset.Row {
	present := make(map[string]bool, len(rows))
	for _, r := range rows {
		present[r.City] = true
	}
	var missing []dataset.Row
	for _, b := range builtinCities {
		if _, isHub := hubCoords[b.Name]; isHub && !present[b.Name] {
			missing = append(missing, dataset.Row{
				City:         b.Name,
				Country:      b.Country,
				Latitude:     b.Lat,
				Longitude:    b.Lon,
				DistDoha:     hubDistance(b, "Doha"),
				DistDubai:    hubDistance(b, "Dubai"),
				DistAbuDhabi: hubDistance(b, "Abu Dhabi"),
			})
		}
	}
	return append(missing, rows...)
}

func citiesFromPBF(path, bbox string, minPop int64) ([]builtinCity, error) {
	var opts osm.ExtractOptions
	opts.MinPopulation = minPop
	if bbox != "" {
		var b osm.BBox
		if _, err := fmt.Sscanf(bbox, "%f,%f,%f,%f", &b.MinLat, &b.MinLng, &b.MaxLat, &b.MaxLng); err != nil {
			return nil, fmt.Errorf("invalid bbox %q: %w", bbox, err)
		}
		opts.BBox = b
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	nodes, err := osm.ExtractCities(context.Background(), f, opts)
	if err != nil {
		return nil, err
	}

	out := make([]builtinCity, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, builtinCity{Name: n.Name, Country: n.Country, Lat: n.Lat, Lon: n.Lon})
	}
	return out, nil
}
