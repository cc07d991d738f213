package transform

import (
	"testing"

	"osm2lanes/pkg/config"
	"osm2lanes/pkg/lanes"
)

// TestRoundTripOnewayWithSidewalks covers spec §8's round-trip invariant:
// tags_to_lanes(lanes_to_tags(road)) ≡ road up to default-filled
// attributes, for a oneway road with sidewalks on both sides.
func TestRoundTripOnewayWithSidewalks(t *testing.T) {
	loc := usLocale()
	original := map[string]string{
		"highway":  "residential",
		"oneway":   "yes",
		"lanes":    "2",
		"sidewalk": "both",
	}
	road, _, err := TagsToLanes(original, loc, config.Default())
	if err != nil {
		t.Fatalf("TagsToLanes: %v", err)
	}

	projected, _ := LanesToTags(road, loc, config.Default(), nil)

	road2, _, err := TagsToLanes(projected, loc, config.Default())
	if err != nil {
		t.Fatalf("TagsToLanes (round 2): %v", err)
	}

	if road.MotorVehicleTravelLanes() != road2.MotorVehicleTravelLanes() {
		t.Fatalf("lane count mismatch after round-trip: %d vs %d",
			road.MotorVehicleTravelLanes(), road2.MotorVehicleTravelLanes())
	}
	if road.IsOneway() != road2.IsOneway() {
		t.Fatalf("oneway-ness mismatch after round-trip")
	}
}

// TestRoundTripFourLaneWithParking covers the same invariant for a two-way
// four lane road with parking on both sides.
func TestRoundTripFourLaneWithParking(t *testing.T) {
	loc := usLocale()
	original := map[string]string{
		"highway":           "residential",
		"lanes":             "4",
		"sidewalk":          "none",
		"parking:lane:both": "parallel",
	}
	road, _, err := TagsToLanes(original, loc, config.Default())
	if err != nil {
		t.Fatalf("TagsToLanes: %v", err)
	}
	projected, _ := LanesToTags(road, loc, config.Default(), nil)
	road2, _, err := TagsToLanes(projected, loc, config.Default())
	if err != nil {
		t.Fatalf("TagsToLanes (round 2): %v", err)
	}

	if got, want := road2.MotorVehicleTravelLanes(), 4; got != want {
		t.Fatalf("round-tripped lane count = %d, want %d", got, want)
	}

	var parkingLanes int
	for _, l := range road2.Lanes {
		if _, ok := l.(lanes.Parking); ok {
			parkingLanes++
		}
	}
	if parkingLanes != 2 {
		t.Fatalf("round-tripped parking lanes = %d, want 2", parkingLanes)
	}
}

// TestRoundTripIdempotence covers spec §8's idempotence invariant:
// tags_to_lanes is a pure function of its inputs.
func TestRoundTripIdempotence(t *testing.T) {
	loc := usLocale()
	tagset := map[string]string{
		"highway": "primary",
		"lanes":   "3",
		"oneway":  "-1",
	}
	road1, ds1, err := TagsToLanes(tagset, loc, config.Default())
	if err != nil {
		t.Fatalf("TagsToLanes (first): %v", err)
	}
	road2, ds2, err := TagsToLanes(tagset, loc, config.Default())
	if err != nil {
		t.Fatalf("TagsToLanes (second): %v", err)
	}
	if len(road1.Lanes) != len(road2.Lanes) {
		t.Fatalf("repeated calls produced different lane counts: %d vs %d", len(road1.Lanes), len(road2.Lanes))
	}
	if len(ds1) != len(ds2) {
		t.Fatalf("repeated calls produced different diagnostic counts: %d vs %d", len(ds1), len(ds2))
	}
}
