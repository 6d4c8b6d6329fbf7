package dataset

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `City,Country,Latitude,Longitude,Distance to Doha,Distance to Dubai,Distance to Abu Dhabi
Doha,Qatar,25.2854,51.5310,0,379.09,302.08
Dubai,United Arab Emirates,25.2048,55.2708,379.09,0,107.52
London,United Kingdom,51.5074,-0.1278,5225.35,5476.72,5438.01
Mumbai,India,19.0760,72.8777,2340.27,1932.86,2053.52
`

func TestRead(t *testing.T) {
	tbl, err := Read(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if tbl.Len() != 4 {
		t.Fatalf("Len = %d, want 4", tbl.Len())
	}

	row, ok := tbl.Lookup("London")
	if !ok {
		t.Fatal("Lookup(London) not found")
	}
	if row.Country != "United Kingdom" {
		t.Errorf("Country = %q", row.Country)
	}
	if row.DistDoha != 5225.35 {
		t.Errorf("DistDoha = %v, want 5225.35", row.DistDoha)
	}

	km, ok := row.DistanceTo("Dubai")
	if !ok || km != 5476.72 {
		t.Errorf("DistanceTo(Dubai) = %v,%v, want 5476.72,true", km, ok)
	}
	if _, ok := row.DistanceTo("London"); ok {
		t.Error("DistanceTo(non-hub) should report not ok")
	}
}

func TestRead_MissingColumns(t *testing.T) {
	csv := "City,Country,Latitude\nDoha,Qatar,25.2854\n"
	_, err := Read(strings.NewReader(csv))
	if !errors.Is(err, ErrMissingColumns) {
		t.Fatalf("err = %v, want ErrMissingColumns", err)
	}
	for _, name := range []string{"Longitude", "Distance to Doha"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name missing column %q", err, name)
		}
	}
}

func TestRead_HeaderWhitespace(t *testing.T) {
	csv := " City , Country , Latitude , Longitude , Distance to Doha , Distance to Dubai , Distance to Abu Dhabi \n" +
		" Doha , Qatar ,25.2854,51.5310,0,379.09,302.08\n"
	tbl, err := Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !tbl.Has("Doha") {
		t.Error("trimmed city name not found")
	}
}

func TestNew_DropsInvalidRows(t *testing.T) {
	rows := []Row{
		{City: "Doha", Country: "Qatar", Latitude: 25.2854, Longitude: 51.5310},
		{City: "", Country: "Nowhere", Latitude: 1, Longitude: 1},
		{City: "Ghost", Country: "Nowhere", Latitude: math.NaN(), Longitude: 1},
		{City: "Phantom", Country: "Nowhere", Latitude: 1, Longitude: math.Inf(1)},
	}
	tbl := New(rows)
	if tbl.Len() != 1 {
		t.Fatalf("Len = %d, want 1 (invalid rows must be dropped)", tbl.Len())
	}
	if !tbl.Has("Doha") {
		t.Error("valid row was dropped")
	}
}

func TestNew_DeduplicatesFirstWins(t *testing.T) {
	rows := []Row{
		{City: "London", Country: "United Kingdom", Latitude: 51.5, Longitude: -0.12, DistDoha: 5225.35},
		{City: "London", Country: "United Kingdom", Latitude: 99, Longitude: 99, DistDoha: 1},
		{City: "London", Country: "Canada", Latitude: 42.98, Longitude: -81.24, DistDoha: 2},
	}
	tbl := New(rows)
	if tbl.Len() != 1 {
		t.Fatalf("Len = %d, want 1", tbl.Len())
	}
	row, _ := tbl.Lookup("London")
	if row.DistDoha != 5225.35 {
		t.Errorf("first occurrence must win, got DistDoha = %v", row.DistDoha)
	}
}

func TestRead_UnparsableDistanceBecomesNaN(t *testing.T) {
	csv := "City,Country,Latitude,Longitude,Distance to Doha,Distance to Dubai,Distance to Abu Dhabi\n" +
		"London,United Kingdom,51.5074,-0.1278,n/a,5476.72,5438.01\n"
	tbl, err := Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	row, _ := tbl.Lookup("London")
	if _, ok := row.DistanceTo("Doha"); ok {
		t.Error("unparsable distance should not be usable")
	}
	if _, ok := row.DistanceTo("Dubai"); !ok {
		t.Error("valid distance in same row must survive")
	}
}

func TestCitiesOrder(t *testing.T) {
	tbl, err := Read(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []string{"Doha", "Dubai", "London", "Mumbai"}
	got := tbl.Cities()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Cities() = %v, want source order %v", got, want)
		}
	}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	tbl, err := Read(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	path := filepath.Join(t.TempDir(), "airport_data.csv")
	if err := Write(path, tbl); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Len() != tbl.Len() {
		t.Fatalf("round trip Len = %d, want %d", got.Len(), tbl.Len())
	}
	for i := 0; i < tbl.Len(); i++ {
		if got.Row(i) != tbl.Row(i) {
			t.Errorf("row %d = %+v, want %+v", i, got.Row(i), tbl.Row(i))
		}
	}

	// No stray temp file left behind.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file was not cleaned up")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
