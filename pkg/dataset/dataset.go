// Package dataset loads and cleans the airport/city table the route graph is
// built from. Each row carries a city's coordinates and its precomputed
// great-circle distance to each of the three hubs; the graph reads those
// columns verbatim and never recomputes a distance.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrMissingColumns is returned when the source is missing required columns.
var ErrMissingColumns = errors.New("missing required columns")

// RequiredColumns are the header names every source must provide.
var RequiredColumns = []string{
	"City",
	"Country",
	"Latitude",
	"Longitude",
	"Distance to Doha",
	"Distance to Dubai",
	"Distance to Abu Dhabi",
}

// Row is one cleaned city record. Hub distances are in kilometers; a missing
// or unparsable distance is NaN and the builder skips the corresponding edge.
type Row struct {
	City         string
	Country      string
	Latitude     float64
	Longitude    float64
	DistDoha     float64
	DistDubai    float64
	DistAbuDhabi float64
}

// DistanceTo returns the row's precomputed distance to the named hub city.
// ok is false for an unknown hub name or a non-finite stored distance.
func (r Row) DistanceTo(hub string) (km float64, ok bool) {
	switch hub {
	case "Doha":
		km = r.DistDoha
	case "Dubai":
		km = r.DistDubai
	case "Abu Dhabi":
		km = r.DistAbuDhabi
	default:
		return 0, false
	}
	if math.IsNaN(km) || math.IsInf(km, 0) {
		return 0, false
	}
	return km, true
}

// Table is a cleaned, deduplicated city table. Row order is the source order
// of first occurrences; the order fixes node index assignment in the graph.
// A Table is read-only after construction and safe for concurrent readers.
type Table struct {
	rows  []Row
	index map[string]int
}

// New cleans the given rows into a Table: city and country names are trimmed,
// rows without a city name or with non-finite coordinates are dropped, and
// duplicates are collapsed keeping the first occurrence. Duplication is
// checked on (City, Country) and then on City alone, so city names are unique
// in the result.
func New(rows []Row) *Table {
	t := &Table{index: make(map[string]int, len(rows))}
	seen := make(map[[2]string]bool, len(rows))

	for _, r := range rows {
		r.City = strings.TrimSpace(r.City)
		r.Country = strings.TrimSpace(r.Country)
		if r.City == "" {
			continue
		}
		if !isFinite(r.Latitude) || !isFinite(r.Longitude) {
			continue
		}
		key := [2]string{r.City, r.Country}
		if seen[key] {
			continue
		}
		seen[key] = true
		if _, dup := t.index[r.City]; dup {
			continue
		}
		t.index[r.City] = len(t.rows)
		t.rows = append(t.rows, r)
	}

	return t
}

// Len returns the number of cities in the table.
func (t *Table) Len() int { return len(t.rows) }

// Row returns the i-th row in table order.
func (t *Table) Row(i int) Row { return t.rows[i] }

// Lookup returns the row for the named city.
func (t *Table) Lookup(city string) (Row, bool) {
	i, ok := t.index[city]
	if !ok {
		return Row{}, false
	}
	return t.rows[i], true
}

// Has reports whether the named city is in the table.
func (t *Table) Has(city string) bool {
	_, ok := t.index[city]
	return ok
}

// Cities returns the city names in table order.
func (t *Table) Cities() []string {
	out := make([]string, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.City
	}
	return out
}

// Load reads and cleans a CSV file.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read parses and cleans CSV data. The first record must be a header
// containing every required column (extra columns are ignored).
func Read(r io.Reader) (*Table, error) {
	records, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMissingColumns)
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := col[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		field := func(name string) string {
			i := col[name]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		rows = append(rows, Row{
			City:         field("City"),
			Country:      field("Country"),
			Latitude:     parseFloat(field("Latitude")),
			Longitude:    parseFloat(field("Longitude")),
			DistDoha:     parseFloat(field("Distance to Doha")),
			DistDubai:    parseFloat(field("Distance to Dubai")),
			DistAbuDhabi: parseFloat(field("Distance to Abu Dhabi")),
		})
	}

	return New(rows), nil
}

// parseFloat coerces a cell to a float, NaN when empty or unparsable.
// New drops rows with NaN coordinates; NaN distances survive cleaning and
// suppress individual edges instead.
func parseFloat(s string) float64 {
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
