package airline

import (
	"errors"
	"testing"
)

func TestHubOf(t *testing.T) {
	wantHubs := map[string]string{
		QatarAirways: "Doha",
		Emirates:     "Dubai",
		Etihad:       "Abu Dhabi",
	}

	seen := make(map[string]bool)
	for name, want := range wantHubs {
		hub, err := HubOf(name)
		if err != nil {
			t.Fatalf("HubOf(%q): %v", name, err)
		}
		if hub != want {
			t.Errorf("HubOf(%q) = %q, want %q", name, hub, want)
		}
		if seen[hub] {
			t.Errorf("hub %q assigned to more than one airline", hub)
		}
		seen[hub] = true
	}
}

func TestHubOf_Unknown(t *testing.T) {
	_, err := HubOf("Lufthansa")
	if !errors.Is(err, ErrUnsupportedAirline) {
		t.Errorf("HubOf unknown airline: err = %v, want ErrUnsupportedAirline", err)
	}
}

func TestServes_OwnHub(t *testing.T) {
	for _, name := range Supported() {
		hub, _ := HubOf(name)
		if !Serves(name, hub) {
			t.Errorf("Serves(%q, %q) = false, airline must serve its own hub", name, hub)
		}
	}
}

func TestServes_OtherHubs(t *testing.T) {
	// Hub-to-hub routes exist: every airline serves every hub city.
	for _, name := range Supported() {
		for _, hub := range []string{"Doha", "Dubai", "Abu Dhabi"} {
			if !Serves(name, hub) {
				t.Errorf("Serves(%q, %q) = false, hubs are always served", name, hub)
			}
		}
	}
}

func TestServes_Exclusions(t *testing.T) {
	tests := []struct {
		airline string
		city    string
		want    bool
	}{
		{QatarAirways, "Vancouver", false},
		{QatarAirways, "Lagos", false},
		{QatarAirways, "Zanzibar", true}, // only Emirates and Etihad exclude it
		{Emirates, "Kampala", false},
		{Emirates, "Accra", true},
		{Etihad, "Buenos Aires", false},
		{Etihad, "London", true},
		{QatarAirways, "Mumbai", true},
	}

	for _, tt := range tests {
		if got := Serves(tt.airline, tt.city); got != tt.want {
			t.Errorf("Serves(%q, %q) = %v, want %v", tt.airline, tt.city, got, tt.want)
		}
	}
}

func TestHubsFor(t *testing.T) {
	hubs, err := HubsFor([]string{QatarAirways, Emirates, QatarAirways})
	if err != nil {
		t.Fatalf("HubsFor: %v", err)
	}
	want := []string{"Doha", "Dubai"}
	if len(hubs) != len(want) {
		t.Fatalf("HubsFor = %v, want %v", hubs, want)
	}
	for i := range want {
		if hubs[i] != want[i] {
			t.Errorf("HubsFor[%d] = %q, want %q", i, hubs[i], want[i])
		}
	}
}

func TestHubsFor_Unknown(t *testing.T) {
	_, err := HubsFor([]string{QatarAirways, "KLM"})
	if !errors.Is(err, ErrUnsupportedAirline) {
		t.Errorf("HubsFor with unknown airline: err = %v, want ErrUnsupportedAirline", err)
	}
}

func TestSupportedOrderStable(t *testing.T) {
	a := Supported()
	b := Supported()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Supported() order not stable: %v vs %v", a, b)
		}
	}
	if len(a) != 3 {
		t.Fatalf("Supported() = %d airlines, want 3", len(a))
	}
}

func TestIsHub(t *testing.T) {
	for _, city := range []string{"Doha", "Dubai", "Abu Dhabi"} {
		if !IsHub(city) {
			t.Errorf("IsHub(%q) = false", city)
		}
	}
	if IsHub("London") {
		t.Errorf("IsHub(London) = true, want false")
	}
}

func TestColor(t *testing.T) {
	for _, name := range Supported() {
		if Color(name) == "" {
			t.Errorf("Color(%q) is empty", name)
		}
	}
	if Color("KLM") != "" {
		t.Errorf("Color of unknown airline should be empty")
	}
}
