// Package schemes implements one parser per recognized OSM tagging scheme.
// Each parser consumes a subtree of a tags.Tags store and yields a typed
// partial description plus diagnostics; parsers never see each other's
// output, keeping each scheme isolated and independently testable (see
// spec §4.2, §9 "inside-out assembly").
package schemes

import (
	"strings"

	"osm2lanes/pkg/diag"
	"osm2lanes/pkg/lanes"
	"osm2lanes/pkg/locale"
	"osm2lanes/pkg/tags"
)

// Side is left or right. The per-side schemes (sidewalk, cycleway,
// busway, parking) do not use it; they carry separate Left and Right
// fields.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Partials aggregates every scheme parser's output for one way. The
// assembler reads this; nothing here is itself ordered geometry yet.
type Partials struct {
	Highway    HighwayPartial
	Oneway     OnewayPartial
	LaneCount  LaneCountPartial
	Sidewalk   SidewalkPartial
	Cycleway   CyclewayPartial
	Busway     BuswayPartial
	Parking    ParkingPartial
	CentreTurn bool
	Modal      ModalPartial
	Turn       TurnPartial
	Width      WidthPartial
	MaxSpeed   MaxSpeedPartial
	Access     AccessPartial
	Lit        *bool
}

// nonVehicleClasses are highway classes with no motor-vehicle travel
// lanes at all; the assembler's edge case for them (§4.3) only needs
// highway + width + lit, so ParseAll stops there rather than running
// lane/sidewalk/cycleway/etc parsers whose tags would be meaningless —
// and, critically, leaves any such tags unconsumed so they surface as
// UnconsumedKnownTag warnings (spec §8 scenario 5).
var nonVehicleClasses = map[lanes.HighwayClass]bool{
	lanes.Footway:    true,
	lanes.Cycleway:   true,
	lanes.Path:       true,
	lanes.Pedestrian: true,
}

// ParseAll runs every scheme parser over t and returns the aggregated
// partials plus every diagnostic produced. The highway-class parser runs
// first and gates which other parsers run at all: `highway=construction`
// and the car-free classes (footway/cycleway/path/pedestrian) short-
// circuit to a minimal partial set, mirroring the Road Assembler's own
// short-circuit for those classes (§4.3).
func ParseAll(t *tags.Tags, loc locale.Locale) (Partials, []diag.Diagnostic) {
	var p Partials
	var all []diag.Diagnostic

	collect := func(ds []diag.Diagnostic) { all = append(all, ds...) }

	var hw []diag.Diagnostic
	p.Highway, hw = parseHighway(t)
	collect(hw)

	if diag.FromDiagnostics(hw) != nil {
		return p, all
	}

	if p.Highway.Class == lanes.ConstructionClass {
		return p, all
	}

	if nonVehicleClasses[p.Highway.Class] {
		var wd []diag.Diagnostic
		p.Width, wd = parseWidth(t)
		collect(wd)
		p.Lit = parseLit(t)
		return p, all
	}

	var ow []diag.Diagnostic
	p.Oneway, ow = parseOneway(t)
	collect(ow)

	var lc []diag.Diagnostic
	p.LaneCount, lc = parseLaneCount(t, loc, p.Oneway)
	collect(lc)

	var sw []diag.Diagnostic
	p.Sidewalk, sw = parseSidewalk(t)
	collect(sw)

	var cw []diag.Diagnostic
	p.Cycleway, cw = parseCycleway(t)
	collect(cw)

	var bw []diag.Diagnostic
	p.Busway, bw = parseBusway(t)
	collect(bw)

	var pk []diag.Diagnostic
	p.Parking, pk = parseParking(t)
	collect(pk)

	var ct []diag.Diagnostic
	p.CentreTurn, ct = parseCentreTurn(t, p.LaneCount)
	collect(ct)

	var md []diag.Diagnostic
	p.Modal, md = parseModal(t)
	collect(md)

	var tm []diag.Diagnostic
	p.Turn, tm = parseTurn(t)
	collect(tm)

	var wd []diag.Diagnostic
	p.Width, wd = parseWidth(t)
	collect(wd)

	var ms []diag.Diagnostic
	p.MaxSpeed, ms = parseMaxSpeed(t, loc)
	collect(ms)

	var ac []diag.Diagnostic
	p.Access, ac = parseAccess(t)
	collect(ac)

	p.Lit = parseLit(t)

	return p, all
}

// knownKeyPrefixes lists every tag key prefix a parser in this package
// recognizes (whether or not it was actually read for a given way, e.g.
// because highway=construction short-circuited before it ran). Used by
// transform.TagsToLanes to flag UnconsumedKnownTag warnings without
// treating arbitrary unrecognized OSM keys as noteworthy.
var knownKeyPrefixes = []string{
	"highway", "oneway", "oneway:bicycle",
	"lanes", "lanes:forward", "lanes:backward", "lanes:both_ways",
	"sidewalk", "sidewalk:left", "sidewalk:right", "sidewalk:both", "sidewalk:width", "shoulder",
	"cycleway", "cycleway:left", "cycleway:right", "cycleway:both", "cycleway:width",
	"busway", "busway:left", "busway:right", "busway:both",
	"parking:lane:left", "parking:lane:right", "parking:lane:both",
	"centre_turn_lane",
	"bus:lanes", "psv:lanes", "bicycle:lanes", "vehicle:lanes",
	"turn:lanes",
	"width", "width:lanes",
	"maxspeed", "maxspeed:forward", "maxspeed:backward", "maxspeed:lanes",
	"access", "access:lanes", "bicycle", "foot", "foot:lanes",
	"motor_vehicle", "motor_vehicle:lanes", "bus", "psv",
	"lit",
}

// IsKnownKey reports whether key is exactly one of, or a colon-separated
// child of, a recognized scheme key prefix.
func IsKnownKey(key string) bool {
	for _, prefix := range knownKeyPrefixes {
		if key == prefix || strings.HasPrefix(key, prefix+":") {
			return true
		}
	}
	return false
}
