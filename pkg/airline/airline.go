// Package airline holds the static route constraints of the network: which
// hub each airline flies out of and which cities each airline refuses to
// serve. The tables are process-wide constants; only read accessors exist.
package airline

import (
	"errors"
	"fmt"
)

// ErrUnsupportedAirline is returned for any airline name outside the fixed set.
var ErrUnsupportedAirline = errors.New("unsupported airline")

// Supported airline names.
const (
	QatarAirways = "Qatar Airways"
	Emirates     = "Emirates"
	Etihad       = "Etihad"
)

// supported lists the airlines in stable display order.
var supported = []string{QatarAirways, Emirates, Etihad}

// hubs maps each airline to its home hub city. Injective: one airline per hub.
var hubs = map[string]string{
	QatarAirways: "Doha",
	Emirates:     "Dubai",
	Etihad:       "Abu Dhabi",
}

// colors maps each airline to its display color. Presentation metadata only;
// route computation never reads it.
var colors = map[string]string{
	QatarAirways: "#800020",
	Emirates:     "#E41B17",
	Etihad:       "#F4C430",
}

// hubCities is the set of all hub cities. Every airline serves every hub.
var hubCities = map[string]bool{
	"Doha":      true,
	"Dubai":     true,
	"Abu Dhabi": true,
}

// excluded lists the cities each airline does not serve. Static data carried
// from the network definition, not derivable from any formula.
var excluded = map[string]map[string]bool{
	QatarAirways: toSet(
		"Vancouver", "Adelaide", "Wellington", "Perth", "Brisbane",
		"Denver", "Phoenix", "Orlando", "Detroit", "Minneapolis",
		"Cleveland", "St. Louis", "Tampa", "Baltimore", "Pittsburgh",
		"Charlotte", "Austin", "San Diego", "Portland", "Sacramento",
		"Bogota", "Lima", "Santiago", "Mexico City", "Lagos",
	),
	Emirates: toSet(
		"Vancouver", "Adelaide", "Wellington", "Perth", "Brisbane",
		"Denver", "Phoenix", "Orlando", "Detroit", "Minneapolis",
		"Cleveland", "St. Louis", "Tampa", "Baltimore", "Pittsburgh",
		"Charlotte", "Austin", "San Diego", "Portland", "Sacramento",
		"Zanzibar", "Kampala", "Lusaka", "Harare",
		"Bogota", "Lima", "Santiago", "Mexico City",
	),
	Etihad: toSet(
		"Vancouver", "Adelaide", "Wellington", "Perth", "Brisbane",
		"Denver", "Phoenix", "Orlando", "Detroit", "Minneapolis",
		"Cleveland", "St. Louis", "Tampa", "Baltimore", "Pittsburgh",
		"Charlotte", "Austin", "San Diego", "Portland", "Sacramento",
		"Mexico City", "Bogota", "Lima", "Santiago",
		"Rio de Janeiro", "Sao Paulo", "Buenos Aires",
		"Lagos", "Accra", "Cape Town", "Zanzibar",
	),
}

func toSet(cities ...string) map[string]bool {
	s := make(map[string]bool, len(cities))
	for _, c := range cities {
		s[c] = true
	}
	return s
}

// Supported returns the supported airline names in stable order.
func Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether name is one of the supported airlines.
func IsSupported(name string) bool {
	_, ok := hubs[name]
	return ok
}

// HubOf returns the home hub city of the given airline.
func HubOf(name string) (string, error) {
	hub, ok := hubs[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAirline, name)
	}
	return hub, nil
}

// Color returns the display color for the airline, or "" if unknown.
func Color(name string) string {
	return colors[name]
}

// IsHub reports whether city is one of the three hub cities.
func IsHub(city string) bool {
	return hubCities[city]
}

// Serves reports whether the airline flies to city. Hub cities are always
// served (hub-to-hub routes exist for every airline); any other city is
// served unless it appears in the airline's exclusion set.
func Serves(name, city string) bool {
	if hubCities[city] {
		return true
	}
	return !excluded[name][city]
}

// HubsFor returns the distinct hub cities of the given airlines, in first
// occurrence order. Fails if any name is unsupported.
func HubsFor(names []string) ([]string, error) {
	seen := make(map[string]bool, len(names))
	var out []string
	for _, name := range names {
		hub, err := HubOf(name)
		if err != nil {
			return nil, err
		}
		if !seen[hub] {
			seen[hub] = true
			out = append(out, hub)
		}
	}
	return out, nil
}
