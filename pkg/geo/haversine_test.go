package geo

import (
	"math"
	"testing"
)

func TestHaversine(t *testing.T) {
	tests := []struct {
		name             string
		lat1, lon1       float64
		lat2, lon2       float64
		wantKm           float64
		tolerancePercent float64
	}{
		{
			name: "London to Doha",
			lat1: 51.5074, lon1: -0.1278, // London
			lat2: 25.2854, lon2: 51.5310, // Doha
			wantKm:           5225,
			tolerancePercent: 1,
		},
		{
			name: "Doha to Dubai",
			lat1: 25.2854, lon1: 51.5310,
			lat2: 25.2048, lon2: 55.2708,
			wantKm:           377,
			tolerancePercent: 1,
		},
		{
			name: "Same point",
			lat1: 25.2854, lon1: 51.5310,
			lat2: 25.2854, lon2: 51.5310,
			wantKm:           0,
			tolerancePercent: 0,
		},
		{
			name: "London to Paris",
			lat1: 51.5074, lon1: -0.1278,
			lat2: 48.8566, lon2: 2.3522,
			wantKm:           343.5,
			tolerancePercent: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if tt.wantKm == 0 {
				if got != 0 {
					t.Errorf("expected 0, got %f", got)
				}
				return
			}
			diff := math.Abs(got-tt.wantKm) / tt.wantKm * 100
			if diff > tt.tolerancePercent {
				t.Errorf("Haversine = %f km, want ~%f km (diff %.1f%%)", got, tt.wantKm, diff)
			}
		})
	}
}

func TestHaversineRounded(t *testing.T) {
	got := HaversineRounded(51.5074, -0.1278, 25.2854, 51.5310)
	if got != math.Round(got*100)/100 {
		t.Errorf("HaversineRounded = %v, not rounded to two decimals", got)
	}
	if HaversineRounded(1, 1, 1, 1) != 0 {
		t.Errorf("distance to self should be exactly 0")
	}
}

func BenchmarkHaversine(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Haversine(51.5074, -0.1278, 25.2854, 51.5310)
	}
}
