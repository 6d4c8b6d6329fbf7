package routing

import (
	"math"

	"github.com/tidwall/rtree"

	"flight_router/pkg/dataset"
	"flight_router/pkg/geo"
)

// nearestCandidates is how many R-tree neighbors get re-ranked by great-circle
// distance. Neighbor order out of the tree is in degree space, which can
// misorder cities at high latitudes, so the first hit is not trusted alone.
const nearestCandidates = 8

// NearestCity is a city matched to a query coordinate.
type NearestCity struct {
	City    string
	Country string
	Lat     float64
	Lng     float64
	DistKm  float64
}

// CityIndex answers nearest-city lookups over the dataset's coordinates.
// It serves input assistance (e.g. a web form's "use my location"); the route
// engine itself never resolves coordinates or fuzzy-matches names.
// Read-only after construction, safe for concurrent use.
type CityIndex struct {
	tree rtree.RTreeG[dataset.Row]
}

// NewCityIndex builds an R-tree over every city in the table.
func NewCityIndex(t *dataset.Table) *CityIndex {
	idx := &CityIndex{}
	for i := 0; i < t.Len(); i++ {
		r := t.Row(i)
		p := [2]float64{r.Longitude, r.Latitude}
		idx.tree.Insert(p, p, r)
	}
	return idx
}

// Nearest returns the dataset city closest to the given coordinate by
// great-circle distance. ok is false only for an empty index.
func (idx *CityIndex) Nearest(lat, lng float64) (NearestCity, bool) {
	p := [2]float64{lng, lat}

	best := NearestCity{DistKm: math.Inf(1)}
	count := 0
	idx.tree.Nearby(
		rtree.BoxDist[float64, dataset.Row](p, p, nil),
		func(min, max [2]float64, row dataset.Row, dist float64) bool {
			km := geo.Haversine(lat, lng, row.Latitude, row.Longitude)
			if km < best.DistKm {
				best = NearestCity{
					City:    row.City,
					Country: row.Country,
					Lat:     row.Latitude,
					Lng:     row.Longitude,
					DistKm:  km,
				}
			}
			count++
			return count < nearestCandidates
		},
	)

	if math.IsInf(best.DistKm, 1) {
		return NearestCity{}, false
	}
	return best, true
}
