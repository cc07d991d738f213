package schemes

import (
	"strings"

	"osm2lanes/pkg/diag"
	"osm2lanes/pkg/lanes"
	"osm2lanes/pkg/tags"
)

// ParkingSide is one side's parking lane scheme result.
type ParkingSide struct {
	Present     bool
	Orientation lanes.ParkingOrientation
}

// ParkingPartial is the output of the parking scheme.
type ParkingPartial struct {
	Left, Right ParkingSide
}

func parseParkingValue(raw string) (lanes.ParkingOrientation, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "parallel":
		return lanes.Parallel, true
	case "diagonal":
		return lanes.Diagonal, true
	case "perpendicular":
		return lanes.Perpendicular, true
	case "no", "":
		return "", false
	default:
		return lanes.Parallel, true
	}
}

// parseParking reads `parking:lane:left`, `parking:lane:right`,
// `parking:lane:both`.
func parseParking(t *tags.Tags) (ParkingPartial, []diag.Diagnostic) {
	var ds []diag.Diagnostic
	var p ParkingPartial

	generalSet := false
	var general ParkingSide
	if raw, ok := t.GetConsume("parking:lane:both"); ok {
		orient, present := parseParkingValue(raw)
		general = ParkingSide{Present: present, Orientation: orient}
		generalSet = true
	}
	p.Left, p.Right = general, general

	if raw, ok := t.GetConsume("parking:lane:left"); ok {
		orient, present := parseParkingValue(raw)
		side := ParkingSide{Present: present, Orientation: orient}
		if generalSet && side != general {
			ds = append(ds, diag.Warningf(diag.TagConflict, []string{"parking:lane:both", "parking:lane:left"}, "parking:lane:left=%q overrides parking:lane:both", raw))
		}
		p.Left = side
	}
	if raw, ok := t.GetConsume("parking:lane:right"); ok {
		orient, present := parseParkingValue(raw)
		side := ParkingSide{Present: present, Orientation: orient}
		if generalSet && side != general {
			ds = append(ds, diag.Warningf(diag.TagConflict, []string{"parking:lane:both", "parking:lane:right"}, "parking:lane:right=%q overrides parking:lane:both", raw))
		}
		p.Right = side
	}

	return p, ds
}
