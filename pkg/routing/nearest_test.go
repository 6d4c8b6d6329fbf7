package routing

import (
	"math"
	"testing"

	"flight_router/pkg/dataset"
)

func TestCityIndexNearest(t *testing.T) {
	idx := NewCityIndex(loadTestTable(t))

	tests := []struct {
		name     string
		lat, lng float64
		want     string
	}{
		{"near Heathrow", 51.47, -0.45, "London"},
		{"central Doha", 25.28, 51.53, "Doha"},
		{"between Dubai and Abu Dhabi, closer to Dubai", 25.0, 55.0, "Dubai"},
		{"off the Indian coast", 18.5, 72.0, "Mumbai"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := idx.Nearest(tc.lat, tc.lng)
			if !ok {
				t.Fatal("Nearest returned ok=false")
			}
			if got.City != tc.want {
				t.Errorf("Nearest(%v, %v) = %s, want %s", tc.lat, tc.lng, got.City, tc.want)
			}
			if got.DistKm < 0 || math.IsInf(got.DistKm, 1) {
				t.Errorf("DistKm = %v", got.DistKm)
			}
		})
	}
}

func TestCityIndexNearest_ExactHit(t *testing.T) {
	idx := NewCityIndex(loadTestTable(t))

	got, ok := idx.Nearest(25.2854, 51.5310)
	if !ok {
		t.Fatal("Nearest returned ok=false")
	}
	if got.City != "Doha" {
		t.Errorf("City = %s, want Doha", got.City)
	}
	if got.DistKm > 0.5 {
		t.Errorf("DistKm = %v, want ~0", got.DistKm)
	}
}

func TestCityIndexNearest_Empty(t *testing.T) {
	idx := NewCityIndex(dataset.New(nil))
	if _, ok := idx.Nearest(0, 0); ok {
		t.Error("empty index returned ok=true")
	}
}
