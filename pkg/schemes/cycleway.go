package schemes

import (
	"strings"

	"osm2lanes/pkg/diag"
	"osm2lanes/pkg/tags"
)

// CyclewayKind is a per-side cycleway tagging value.
type CyclewayKind int

const (
	CyclewayNone CyclewayKind = iota
	CyclewayLane
	CyclewayTrack
	CyclewayOppositeLane
	CyclewayOppositeTrack
	CyclewaySharedLane
)

// CyclewaySide is one side's cycleway scheme result.
type CyclewaySide struct {
	Kind CyclewayKind
}

// IsPaired reports whether this side assembles into two contraflow lanes
// rather than one lane following the adjacent travel direction.
func (s CyclewaySide) IsPaired() bool {
	return s.Kind == CyclewayOppositeTrack
}

// Present reports whether this side contributes any cycle lane at all.
func (s CyclewaySide) Present() bool {
	return s.Kind != CyclewayNone
}

// CyclewayPartial is the output of the cycleway scheme.
type CyclewayPartial struct {
	Left, Right CyclewaySide
}

func parseCyclewayValue(raw string) CyclewayKind {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "lane":
		return CyclewayLane
	case "track":
		return CyclewayTrack
	case "opposite_lane":
		return CyclewayOppositeLane
	case "opposite_track":
		return CyclewayOppositeTrack
	case "shared_lane":
		return CyclewaySharedLane
	default:
		return CyclewayNone
	}
}

// parseCycleway reads `cycleway`, `cycleway:left`, `cycleway:right`,
// `cycleway:both`, applying the same side-specificity override rule as
// sidewalk/busway/parking.
func parseCycleway(t *tags.Tags) (CyclewayPartial, []diag.Diagnostic) {
	var ds []diag.Diagnostic
	var p CyclewayPartial

	general := CyclewayNone
	generalSet := false
	if raw, ok := t.GetConsume("cycleway"); ok {
		general = parseCyclewayValue(raw)
		generalSet = true
	}
	if raw, ok := t.GetConsume("cycleway:both"); ok {
		general = parseCyclewayValue(raw)
		generalSet = true
	}
	p.Left = CyclewaySide{Kind: general}
	p.Right = CyclewaySide{Kind: general}

	if raw, ok := t.GetConsume("cycleway:left"); ok {
		k := parseCyclewayValue(raw)
		if generalSet && k != general {
			ds = append(ds, diag.Warningf(diag.TagConflict, []string{"cycleway", "cycleway:left"}, "cycleway:left=%q overrides cycleway", raw))
		}
		p.Left = CyclewaySide{Kind: k}
	}
	if raw, ok := t.GetConsume("cycleway:right"); ok {
		k := parseCyclewayValue(raw)
		if generalSet && k != general {
			ds = append(ds, diag.Warningf(diag.TagConflict, []string{"cycleway", "cycleway:right"}, "cycleway:right=%q overrides cycleway", raw))
		}
		p.Right = CyclewaySide{Kind: k}
	}

	return p, ds
}
