package geocode

import (
	"testing"

	"osm2lanes/pkg/locale"
)

func TestLookupResolvesCountryAndDrivingSide(t *testing.T) {
	g := NewDefault()

	tests := []struct {
		name     string
		lat, lon float64
		want     string
		side     locale.DrivingSide
	}{
		{"Portland, OR", 45.5, -122.7, "US", locale.Right},
		{"Berlin", 52.5, 13.4, "DE", locale.Right},
		{"London", 51.5, -0.1, "GB", locale.Left},
		{"Tokyo", 35.7, 139.7, "JP", locale.Left},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.Lookup(tt.lat, tt.lon)
			if err != nil {
				t.Fatalf("Lookup: %v", err)
			}
			if got.Country != tt.want {
				t.Errorf("Country = %q, want %q", got.Country, tt.want)
			}
			if got.DrivingSide != tt.side {
				t.Errorf("DrivingSide = %v, want %v", got.DrivingSide, tt.side)
			}
		})
	}
}

func TestLookupNoMatch(t *testing.T) {
	g := NewDefault()
	// The middle of the Pacific Ocean, far from any box in DefaultBoxes.
	if _, err := g.Lookup(0, -160); err == nil {
		t.Fatal("expected an error for a point with no matching country box")
	}
}
