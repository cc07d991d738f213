package fetch

import (
	"testing"

	"github.com/paulmach/osm"
)

func TestBBoxContains(t *testing.T) {
	b := BBox{MinLat: 47.0, MaxLat: 48.0, MinLon: 7.0, MaxLon: 8.0}
	tests := []struct {
		name     string
		lat, lon float64
		want     bool
	}{
		{"inside", 47.5, 7.5, true},
		{"on min corner", 47.0, 7.0, true},
		{"on max corner", 48.0, 8.0, true},
		{"north of box", 49.0, 7.5, false},
		{"west of box", 47.5, 6.0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.contains(tt.lat, tt.lon); got != tt.want {
				t.Errorf("contains(%v, %v) = %v, want %v", tt.lat, tt.lon, got, tt.want)
			}
		})
	}
}

func TestTagsToMap(t *testing.T) {
	in := osm.Tags{
		{Key: "highway", Value: "residential"},
		{Key: "lanes", Value: "2"},
	}
	got := tagsToMap(in)
	if got["highway"] != "residential" || got["lanes"] != "2" {
		t.Fatalf("tagsToMap() = %+v", got)
	}
	if len(got) != 2 {
		t.Fatalf("len(tagsToMap()) = %d, want 2", len(got))
	}
}
