package schemes

import (
	"math"
	"testing"
)

func TestParseLengthMeters(t *testing.T) {
	cases := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"3.5", 3.5, false},
		{"3.5 m", 3.5, false},
		{"3.5m", 3.5, false},
		{"6 ft", 6 * 0.3048, false},
		{"6ft", 6 * 0.3048, false},
		{"6'", 6 * 0.3048, false},
		{"", 0, true},
		{"not-a-number", 0, true},
		{"ft", 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := parseLengthMeters(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parseLengthMeters(%q) = %v, want an error", tc.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseLengthMeters(%q) returned error: %v", tc.raw, err)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("parseLengthMeters(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestParseSpeed(t *testing.T) {
	cases := []struct {
		raw         string
		defaultUnit string
		wantValue   float64
		wantUnit    string
		wantErr     bool
	}{
		{"50", "km/h", 50, "km/h", false},
		{"30 mph", "km/h", 30, "mph", false},
		{"30mph", "km/h", 30, "mph", false},
		{"50 km/h", "mph", 50, "km/h", false},
		{"walk", "mph", 0, "", true},
		{"none", "mph", 0, "", true},
		{"signals", "mph", 0, "", true},
		{"not-a-speed", "mph", 0, "", true},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			value, unit, err := parseSpeed(tc.raw, tc.defaultUnit)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parseSpeed(%q) = %v %v, want an error", tc.raw, value, unit)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSpeed(%q) returned error: %v", tc.raw, err)
			}
			if value != tc.wantValue || unit != tc.wantUnit {
				t.Fatalf("parseSpeed(%q) = %v %v, want %v %v", tc.raw, value, unit, tc.wantValue, tc.wantUnit)
			}
		})
	}
}
