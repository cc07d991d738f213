package transform

import (
	"testing"

	"osm2lanes/pkg/config"
	"osm2lanes/pkg/lanes"
	"osm2lanes/pkg/locale"
)

func gbLocale() locale.Locale { return locale.New("GB", "", locale.Left) }

// nonSeparatorRoles reduces a Road's lane list to one direction+designated
// signature per non-separator lane. Separators are dropped so the mirror
// comparison below isolates the structural invariant (spec §8 "mirror
// symmetry") from the Separator Placer's own layout.
func nonSeparatorRoles(road lanes.Road) []string {
	var out []string
	for _, l := range road.Lanes {
		switch v := l.(type) {
		case lanes.Travel:
			out = append(out, "travel:"+string(v.Direction)+":"+string(v.Designated))
		case lanes.Parking:
			out = append(out, "parking:"+string(v.Direction)+":"+string(v.Orientation))
		case lanes.Shoulder:
			out = append(out, "shoulder")
		case lanes.Construction:
			out = append(out, "construction")
		}
	}
	return out
}

func reversedRoles(ss []string) []string {
	out := make([]string, len(ss))
	for i := range ss {
		out[i] = ss[len(ss)-1-i]
	}
	return out
}

func assertRoleSeq(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("lane roles = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("lane roles = %v, want %v", got, want)
		}
	}
}

// TestMirrorSymmetrySideSymmetricTags covers spec §8's mirror-symmetry
// invariant: for a tag set using only side-symmetric keys (sidewalk=both,
// cycleway:both), assembling against a right-driving and a left-driving
// locale yields lane lists that are exact reverses of one another.
func TestMirrorSymmetrySideSymmetricTags(t *testing.T) {
	symmetric := map[string]string{
		"highway":       "residential",
		"lanes":         "2",
		"sidewalk":      "both",
		"cycleway:both": "lane",
	}

	rightRoad, _, err := TagsToLanes(symmetric, usLocale(), config.Default())
	if err != nil {
		t.Fatalf("TagsToLanes (right-driving): %v", err)
	}
	leftRoad, _, err := TagsToLanes(symmetric, gbLocale(), config.Default())
	if err != nil {
		t.Fatalf("TagsToLanes (left-driving): %v", err)
	}

	got := nonSeparatorRoles(leftRoad)
	want := reversedRoles(nonSeparatorRoles(rightRoad))
	assertRoleSeq(t, got, want)
}

// TestMirrorSymmetryFourLaneWithParking repeats the invariant over a wider
// symmetric cross-section (parking on both sides, no sidewalks).
func TestMirrorSymmetryFourLaneWithParking(t *testing.T) {
	symmetric := map[string]string{
		"highway":           "residential",
		"lanes":             "4",
		"sidewalk":          "none",
		"parking:lane:both": "parallel",
	}

	rightRoad, _, err := TagsToLanes(symmetric, usLocale(), config.Default())
	if err != nil {
		t.Fatalf("TagsToLanes (right-driving): %v", err)
	}
	leftRoad, _, err := TagsToLanes(symmetric, gbLocale(), config.Default())
	if err != nil {
		t.Fatalf("TagsToLanes (left-driving): %v", err)
	}

	got := nonSeparatorRoles(leftRoad)
	want := reversedRoles(nonSeparatorRoles(rightRoad))
	assertRoleSeq(t, got, want)
}

// TestMirrorSymmetryOnewayUnaffectedByDrivingSide covers the degenerate
// case: a oneway way's lane directions are relative to the way's own
// digitization, not to driving side, so mirroring the locale leaves a
// single-direction lane sequence unchanged.
func TestMirrorSymmetryOnewayUnaffectedByDrivingSide(t *testing.T) {
	onewayTags := map[string]string{
		"highway": "residential",
		"oneway":  "yes",
		"lanes":   "2",
	}

	rightRoad, _, err := TagsToLanes(onewayTags, usLocale(), config.Default())
	if err != nil {
		t.Fatalf("TagsToLanes (right-driving): %v", err)
	}
	leftRoad, _, err := TagsToLanes(onewayTags, gbLocale(), config.Default())
	if err != nil {
		t.Fatalf("TagsToLanes (left-driving): %v", err)
	}

	assertRoleSeq(t, nonSeparatorRoles(leftRoad), nonSeparatorRoles(rightRoad))
}
