package assemble

import (
	"testing"

	"osm2lanes/pkg/config"
	"osm2lanes/pkg/diag"
	"osm2lanes/pkg/lanes"
	"osm2lanes/pkg/locale"
	"osm2lanes/pkg/schemes"
	"osm2lanes/pkg/tags"
)

func usLocale() locale.Locale  { return locale.New("US", "", locale.Right) }
func gbLocale() locale.Locale  { return locale.New("GB", "", locale.Left) }

func parse(t *testing.T, values map[string]string, loc locale.Locale) schemes.Partials {
	t.Helper()
	p, ds := schemes.ParseAll(tags.New(values), loc)
	for _, d := range ds {
		if d.Severity == diag.Error {
			t.Fatalf("unexpected error diagnostic: %+v", d)
		}
	}
	return p
}

func designations(road lanes.Road) []string {
	var out []string
	for _, l := range road.Lanes {
		switch v := l.(type) {
		case lanes.Travel:
			out = append(out, string(v.Direction)+":"+string(v.Designated))
		case lanes.Parking:
			out = append(out, "parking")
		case lanes.Shoulder:
			out = append(out, "shoulder")
		case lanes.Separator:
			out = append(out, "separator")
		case lanes.Construction:
			out = append(out, "construction")
		}
	}
	return out
}

// TestOnewayWithCyclewayAndSidewalks covers spec §8 scenario 1: a oneway
// residential street with two forward travel lanes, a left-hand cycle lane,
// and sidewalks on both sides.
func TestOnewayWithCyclewayAndSidewalks(t *testing.T) {
	loc := usLocale()
	p := parse(t, map[string]string{
		"highway":       "residential",
		"oneway":        "yes",
		"lanes":         "2",
		"sidewalk":      "both",
		"cycleway:left": "lane",
	}, loc)

	road, ds := Assemble(p, loc, config.Default())
	for _, d := range ds {
		t.Logf("diagnostic: %+v", d)
	}

	got := designations(road)
	want := []string{
		"none:foot",
		"forward:bicycle",
		"forward:motor_vehicle",
		"forward:motor_vehicle",
		"none:foot",
	}
	assertSeq(t, got, want)
}

// TestFourLaneResidentialWithParking covers spec §8 scenario 2: a two-way
// four lane residential road with parking on both sides and no sidewalks.
func TestFourLaneResidentialWithParking(t *testing.T) {
	loc := usLocale()
	p := parse(t, map[string]string{
		"highway":            "residential",
		"lanes":              "4",
		"sidewalk":           "none",
		"parking:lane:both":  "parallel",
	}, loc)

	road, _ := Assemble(p, loc, config.Default())
	got := designations(road)
	want := []string{
		"shoulder",
		"parking",
		"backward:motor_vehicle",
		"backward:motor_vehicle",
		"forward:motor_vehicle",
		"forward:motor_vehicle",
		"parking",
		"shoulder",
	}
	assertSeq(t, got, want)
}

// TestThreeLanesWithCentreTurn covers spec §8 scenario 3: an odd lane count
// with a centre turn lane, resolving the forward/backward split by driving
// side per the spec's worked example (see DESIGN.md).
func TestThreeLanesWithCentreTurn(t *testing.T) {
	loc := usLocale()
	p := parse(t, map[string]string{
		"highway":          "primary",
		"lanes":            "3",
		"centre_turn_lane": "yes",
	}, loc)

	cfg := config.Default()
	cfg.IncludeShoulders = false
	road, _ := Assemble(p, loc, cfg)
	got := designations(road)
	want := []string{
		"backward:motor_vehicle",
		"both:motor_vehicle",
		"forward:motor_vehicle",
		"forward:motor_vehicle",
	}
	assertSeq(t, got, want)
}

// TestReversedOneway covers oneway=-1: all travel lanes face backward, and
// side additions (here none) follow that same direction rather than a
// hardcoded left/right assumption.
func TestReversedOneway(t *testing.T) {
	loc := usLocale()
	p := parse(t, map[string]string{
		"highway": "residential",
		"oneway":  "-1",
		"lanes":   "2",
	}, loc)

	cfg := config.Default()
	cfg.IncludeShoulders = false
	road, _ := Assemble(p, loc, cfg)
	got := designations(road)
	want := []string{
		"backward:motor_vehicle",
		"backward:motor_vehicle",
	}
	assertSeq(t, got, want)
}

// TestLeftDrivingSplit covers the left-driving-side version of the odd lane
// split: the backward block (the locale's own driving direction) gets the
// extra lane.
func TestLeftDrivingSplit(t *testing.T) {
	loc := gbLocale()
	p := parse(t, map[string]string{
		"highway": "primary",
		"lanes":   "3",
	}, loc)

	lc := p.LaneCount
	if lc.Backward != 2 || lc.Forward != 1 {
		t.Fatalf("lane split = forward:%d backward:%d, want forward:1 backward:2", lc.Forward, lc.Backward)
	}
}

// TestBusLaneDesignationOverride covers spec §8 scenario 6: a two-way
// two lane road where `bus:lanes` designates the left lane for buses and
// leaves the right lane as ordinary motor traffic.
func TestBusLaneDesignationOverride(t *testing.T) {
	loc := usLocale()
	p := parse(t, map[string]string{
		"highway":   "residential",
		"lanes":     "2",
		"bus:lanes": "designated|no",
	}, loc)

	cfg := config.Default()
	cfg.IncludeShoulders = false
	road, _ := Assemble(p, loc, cfg)
	got := designations(road)
	want := []string{
		"backward:bus",
		"forward:motor_vehicle",
	}
	assertSeq(t, got, want)
}

func TestConstructionShortCircuit(t *testing.T) {
	loc := usLocale()
	p := parse(t, map[string]string{
		"highway": "construction",
		"lanes":   "4",
	}, loc)

	road, _ := Assemble(p, loc, config.Default())
	if road.HighwayClass != lanes.ConstructionClass {
		t.Fatalf("HighwayClass = %v, want ConstructionClass", road.HighwayClass)
	}
	if len(road.Lanes) != 1 {
		t.Fatalf("Lanes = %+v, want exactly one Construction lane", road.Lanes)
	}
	if _, ok := road.Lanes[0].(lanes.Construction); !ok {
		t.Fatalf("Lanes[0] = %T, want Construction", road.Lanes[0])
	}
}

func TestNonVehicleClassFootway(t *testing.T) {
	loc := usLocale()
	p := parse(t, map[string]string{
		"highway": "footway",
		"lanes":   "2", // not a vehicle-lane key for this class; should stay unconsumed
	}, loc)

	road, _ := Assemble(p, loc, config.Default())
	if len(road.Lanes) != 1 {
		t.Fatalf("Lanes = %+v, want exactly one foot lane", road.Lanes)
	}
	tr, ok := road.Lanes[0].(lanes.Travel)
	if !ok || tr.Designated != lanes.Foot || tr.Direction != lanes.NoDir {
		t.Fatalf("Lanes[0] = %+v, want undirected foot travel lane", road.Lanes[0])
	}
}

func assertSeq(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("lane sequence = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("lane sequence = %v, want %v", got, want)
		}
	}
}
