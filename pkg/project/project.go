// Package project implements the Lanes-to-Tags Projector: the inverse of
// schemes+assemble+separator, turning an assembled Road back into a
// minimal tag set that reproduces it (spec §4.5).
package project

import (
	"fmt"
	"strconv"
	"strings"

	"osm2lanes/pkg/config"
	"osm2lanes/pkg/diag"
	"osm2lanes/pkg/lanes"
	"osm2lanes/pkg/locale"
	"osm2lanes/pkg/tags"
)

// Project turns r into a Tags store. passthrough, if non-nil, is consulted
// for any keys the original tag set carried that no scheme recognizes;
// those are copied through verbatim so round-tripping via transform
// doesn't silently drop caller-supplied metadata (spec §4.5 step 6).
func Project(r lanes.Road, loc locale.Locale, cfg config.Config, passthrough *tags.Tags) (*tags.Tags, []diag.Diagnostic) {
	out := map[string]string{}
	var ds []diag.Diagnostic

	if r.HighwayClass == lanes.ConstructionClass {
		out["highway"] = "construction"
		if len(r.Lanes) == 1 {
			if c, ok := r.Lanes[0].(lanes.Construction); ok && c.WidthM != nil {
				out["width"] = formatMeters(*c.WidthM)
			}
		}
		return finish(out, passthrough), ds
	}

	out["highway"] = string(r.HighwayClass)

	if isNonVehicleClass(r.HighwayClass) {
		if len(r.Lanes) == 1 {
			if tr, ok := r.Lanes[0].(lanes.Travel); ok && tr.WidthM != nil {
				out["width"] = formatMeters(*tr.WidthM)
			}
		}
		if r.Lit != nil {
			out["lit"] = boolTag(*r.Lit)
		}
		return finish(out, passthrough), ds
	}

	main := stripSeparators(r.Lanes)

	left, right, mid := peelSides(main)

	projectLaneCount(out, mid, loc)
	projectModalAndTurn(out, mid)
	projectWidthAndSpeed(out, mid, r.HighwayClass, loc, cfg)
	projectAccess(out, mid)

	projectSide(out, "sidewalk", left.sidewalk, right.sidewalk)
	projectCycleway(out, left.cycleway, right.cycleway)
	projectBool(out, "busway", left.bus, right.bus)
	projectParking(out, left.parking, right.parking)

	if r.Lit != nil {
		out["lit"] = boolTag(*r.Lit)
	}

	return finish(out, passthrough), ds
}

func isNonVehicleClass(c lanes.HighwayClass) bool {
	switch c {
	case lanes.Footway, lanes.Cycleway, lanes.Path, lanes.Pedestrian:
		return true
	}
	return false
}

func stripSeparators(ls []lanes.Lane) []lanes.Lane {
	out := make([]lanes.Lane, 0, len(ls))
	for _, l := range ls {
		if _, ok := l.(lanes.Separator); ok {
			continue
		}
		out = append(out, l)
	}
	return out
}

// sideExtras is what was peeled off one side of the travel block.
type sideExtras struct {
	sidewalk rawSidewalk
	cycleway rawCycleway
	bus      bool
	parking  rawParking
}

type rawSidewalk int

const (
	swUnset rawSidewalk = iota
	swNone
	swYes
)

type rawCycleway int

const (
	cwNone rawCycleway = iota
	cwLane
	cwTrack
	cwOppositeLane
	cwOppositeTrack
	cwSharedLane
)

type rawParking struct {
	present     bool
	orientation lanes.ParkingOrientation
}

// peelSides walks in from both ends of ls, consuming the sidewalk/shoulder,
// cycleway, parking, and bus lanes that growSide adds (the reverse of the
// order growSide adds them in), stopping at the first lane that belongs to the main travel
// block. The remaining middle slice is the seeded + overridden travel
// lanes in assembler order.
func peelSides(ls []lanes.Lane) (left, right sideExtras, mid []lanes.Lane) {
	lo, hi := 0, len(ls)

	lo, left.sidewalk = peelSidewalk(ls, lo, hi, true)
	hi, right.sidewalk = peelSidewalkFromRight(ls, lo, hi)

	lo, left.cycleway = peelCycleway(ls, lo, hi, true)
	hi, right.cycleway = peelCycleway(ls, lo, hi, false)

	lo, left.parking = peelParking(ls, lo, hi, true)
	hi, right.parking = peelParking(ls, lo, hi, false)

	lo, left.bus = peelBus(ls, lo, hi, true)
	hi, right.bus = peelBus(ls, lo, hi, false)

	return left, right, ls[lo:hi]
}

func peelSidewalk(ls []lanes.Lane, lo, hi int, fromLeft bool) (int, rawSidewalk) {
	if lo >= hi {
		return lo, swUnset
	}
	switch v := ls[lo].(type) {
	case lanes.Shoulder:
		return lo + 1, swNone
	case lanes.Travel:
		if v.Designated == lanes.Foot {
			return lo + 1, swYes
		}
	}
	return lo, swUnset
}

func peelSidewalkFromRight(ls []lanes.Lane, lo, hi int) (int, rawSidewalk) {
	if lo >= hi {
		return hi, swUnset
	}
	switch v := ls[hi-1].(type) {
	case lanes.Shoulder:
		return hi - 1, swNone
	case lanes.Travel:
		if v.Designated == lanes.Foot {
			return hi - 1, swYes
		}
	}
	return hi, swUnset
}

func peelCycleway(ls []lanes.Lane, lo, hi int, fromLeft bool) (int, rawCycleway) {
	idx := lo
	if !fromLeft {
		idx = hi - 1
	}
	if idx < lo || idx >= hi {
		return boundOf(fromLeft, lo, hi), cwNone
	}
	tr, ok := ls[idx].(lanes.Travel)
	if !ok || tr.Designated != lanes.Bicycle {
		return boundOf(fromLeft, lo, hi), cwNone
	}

	// A contraflow track is two adjacent bicycle lanes of opposite
	// direction; a single lane/track/shared_lane is one lane following
	// the adjacent travel direction.
	otherIdx := idx + 1
	if !fromLeft {
		otherIdx = idx - 1
	}
	if otherIdx >= lo && otherIdx < hi {
		if other, ok := ls[otherIdx].(lanes.Travel); ok && other.Designated == lanes.Bicycle && other.Direction != tr.Direction {
			if fromLeft {
				return otherIdx + 1, cwOppositeTrack
			}
			return otherIdx, cwOppositeTrack
		}
	}

	if fromLeft {
		return idx + 1, cwLane
	}
	return idx, cwLane
}

func peelParking(ls []lanes.Lane, lo, hi int, fromLeft bool) (int, rawParking) {
	idx := lo
	if !fromLeft {
		idx = hi - 1
	}
	if idx < lo || idx >= hi {
		return boundOf(fromLeft, lo, hi), rawParking{}
	}
	pk, ok := ls[idx].(lanes.Parking)
	if !ok {
		return boundOf(fromLeft, lo, hi), rawParking{}
	}
	if fromLeft {
		return idx + 1, rawParking{present: true, orientation: pk.Orientation}
	}
	return idx, rawParking{present: true, orientation: pk.Orientation}
}

func peelBus(ls []lanes.Lane, lo, hi int, fromLeft bool) (int, bool) {
	idx := lo
	if !fromLeft {
		idx = hi - 1
	}
	if idx < lo || idx >= hi {
		return boundOf(fromLeft, lo, hi), false
	}
	tr, ok := ls[idx].(lanes.Travel)
	if !ok || tr.Designated != lanes.Bus {
		return boundOf(fromLeft, lo, hi), false
	}
	if fromLeft {
		return idx + 1, true
	}
	return idx, true
}

func boundOf(fromLeft bool, lo, hi int) int {
	if fromLeft {
		return lo
	}
	return hi
}

// projectLaneCount emits `lanes`/`lanes:forward`/`lanes:backward`, `oneway`,
// and `centre_turn_lane` from the main travel block.
func projectLaneCount(out map[string]string, mid []lanes.Lane, loc locale.Locale) {
	var fwd, bwd, centre int
	for _, l := range mid {
		tr, ok := l.(lanes.Travel)
		if !ok || tr.Designated == lanes.Bicycle || tr.Designated == lanes.Foot {
			continue
		}
		switch tr.Direction {
		case lanes.Forward:
			fwd++
		case lanes.Backward:
			bwd++
		case lanes.Both:
			centre++
		}
	}

	if centre > 0 {
		out["centre_turn_lane"] = "yes"
	}

	switch {
	case fwd > 0 && bwd == 0:
		out["oneway"] = "yes"
		out["lanes"] = strconv.Itoa(fwd)
	case bwd > 0 && fwd == 0:
		out["oneway"] = "-1"
		out["lanes"] = strconv.Itoa(bwd)
	case fwd > 0 && bwd > 0:
		total := fwd + bwd
		wantFwd, wantBwd := splitByDrivingSide(total, loc.DrivingSide)
		if wantFwd == fwd && wantBwd == bwd {
			out["lanes"] = strconv.Itoa(total)
		} else {
			out["lanes:forward"] = strconv.Itoa(fwd)
			out["lanes:backward"] = strconv.Itoa(bwd)
		}
	}
}

// splitByDrivingSide mirrors schemes.splitByDrivingSide, which is
// unexported and so cannot be called from here.
func splitByDrivingSide(n int, side locale.DrivingSide) (forward, backward int) {
	if side == locale.Left {
		backward = (n + 1) / 2
		forward = n - backward
		return
	}
	forward = (n + 1) / 2
	backward = n - forward
	return
}

// projectModalAndTurn emits `bus:lanes`/`psv:lanes` and `turn:lanes` only when at least one lane in mid deviates from the plain
// motor-vehicle default with no turn markings (spec §4.5 step 5).
func projectModalAndTurn(out map[string]string, mid []lanes.Lane) {
	needsBus := false
	needsPsv := false
	needsTurn := false
	busSegs := make([]string, len(mid))
	psvSegs := make([]string, len(mid))
	turnSegs := make([]string, len(mid))

	for i, l := range mid {
		tr, ok := l.(lanes.Travel)
		if !ok {
			continue
		}
		switch tr.Designated {
		case lanes.Bus:
			needsBus = true
			busSegs[i] = "designated"
		case lanes.Psv:
			needsPsv = true
			psvSegs[i] = "designated"
		}
		if len(tr.TurnMarkings) > 0 {
			needsTurn = true
			marks := make([]string, len(tr.TurnMarkings))
			for j, m := range tr.TurnMarkings {
				switch m {
				case lanes.TurnMergeLeft:
					marks[j] = "merge_to_left"
				case lanes.TurnMergeRight:
					marks[j] = "merge_to_right"
				default:
					marks[j] = string(m)
				}
			}
			turnSegs[i] = strings.Join(marks, ";")
		}
	}

	if needsBus {
		out["bus:lanes"] = strings.Join(busSegs, "|")
	}
	if needsPsv {
		out["psv:lanes"] = strings.Join(psvSegs, "|")
	}
	if needsTurn {
		out["turn:lanes"] = strings.Join(turnSegs, "|")
	}
}

// projectWidthAndSpeed emits a single way-wide `width`/`maxspeed` when
// every travel lane in mid that carries a value carries the same one. The
// width is left out when it equals the locale default and
// cfg.InferDefaults is set. Per-lane forms (`width:lanes`,
// `maxspeed:lanes`) are not emitted.
func projectWidthAndSpeed(out map[string]string, mid []lanes.Lane, class lanes.HighwayClass, loc locale.Locale, cfg config.Config) {
	var width *float64
	uniformWidth := true
	var speed *lanes.Speed
	uniformSpeed := true

	for _, l := range mid {
		tr, ok := l.(lanes.Travel)
		if !ok {
			continue
		}
		if tr.WidthM != nil {
			if width == nil {
				width = tr.WidthM
			} else if *width != *tr.WidthM {
				uniformWidth = false
			}
		}
		if tr.MaxSpeed != nil {
			if speed == nil {
				speed = tr.MaxSpeed
			} else if *speed != *tr.MaxSpeed {
				uniformSpeed = false
			}
		}
	}

	if width != nil && uniformWidth {
		def := loc.DefaultLaneWidthMeters(string(class))
		if !cfg.InferDefaults || *width != def {
			out["width"] = formatMeters(*width)
		}
	}
	if speed != nil && uniformSpeed {
		out["maxspeed"] = formatSpeed(*speed)
	}
}

// projectAccess emits a way-wide `access` when every travel lane in mid
// shares one non-nil Access value.
func projectAccess(out map[string]string, mid []lanes.Lane) {
	var access *lanes.Access
	uniform := true
	for _, l := range mid {
		tr, ok := l.(lanes.Travel)
		if !ok {
			continue
		}
		if tr.Access != nil {
			if access == nil {
				access = tr.Access
			} else if *access != *tr.Access {
				uniform = false
			}
		}
	}
	if access != nil && uniform {
		out["access"] = strings.ToLower(string(*access))
	}
}

func projectSide(out map[string]string, key string, left, right rawSidewalk) {
	if left == swUnset && right == swUnset {
		return
	}
	if left == right {
		out[key] = sidewalkValue(left)
		return
	}
	if left != swUnset {
		out[key+":left"] = sidewalkValue(left)
	}
	if right != swUnset {
		out[key+":right"] = sidewalkValue(right)
	}
}

func sidewalkValue(k rawSidewalk) string {
	if k == swYes {
		return "yes"
	}
	return "none"
}

func projectCycleway(out map[string]string, left, right rawCycleway) {
	if left == cwNone && right == cwNone {
		return
	}
	if left == right {
		out["cycleway"] = cyclewayValue(left)
		return
	}
	if left != cwNone {
		out["cycleway:left"] = cyclewayValue(left)
	}
	if right != cwNone {
		out["cycleway:right"] = cyclewayValue(right)
	}
}

func cyclewayValue(k rawCycleway) string {
	switch k {
	case cwLane:
		return "lane"
	case cwTrack:
		return "track"
	case cwOppositeLane:
		return "opposite_lane"
	case cwOppositeTrack:
		return "opposite_track"
	case cwSharedLane:
		return "shared_lane"
	default:
		return "no"
	}
}

func projectBool(out map[string]string, key string, left, right bool) {
	if !left && !right {
		return
	}
	if left == right {
		out[key] = "lane"
		return
	}
	if left {
		out[key+":left"] = "lane"
	}
	if right {
		out[key+":right"] = "lane"
	}
}

func projectParking(out map[string]string, left, right rawParking) {
	if !left.present && !right.present {
		return
	}
	if left == right {
		out["parking:lane:both"] = string(left.orientation)
		return
	}
	if left.present {
		out["parking:lane:left"] = string(left.orientation)
	}
	if right.present {
		out["parking:lane:right"] = string(right.orientation)
	}
}

func boolTag(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func formatMeters(m float64) string {
	return strconv.FormatFloat(m, 'g', -1, 64)
}

func formatSpeed(s lanes.Speed) string {
	if s.Unit == "mph" {
		return fmt.Sprintf("%g mph", s.Value)
	}
	return strconv.FormatFloat(s.Value, 'g', -1, 64)
}

// finish builds the final Tags, copying through any passthrough keys this
// projector didn't already emit a value for.
func finish(out map[string]string, passthrough *tags.Tags) *tags.Tags {
	if passthrough != nil {
		for k, v := range passthrough.Map() {
			if _, ok := out[k]; !ok {
				out[k] = v
			}
		}
	}
	return tags.New(out)
}
