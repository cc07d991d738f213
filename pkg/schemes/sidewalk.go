package schemes

import (
	"strings"

	"osm2lanes/pkg/diag"
	"osm2lanes/pkg/tags"
)

// SidewalkKind is the per-side sidewalk presence.
type SidewalkKind int

const (
	SidewalkUnset SidewalkKind = iota
	SidewalkNone
	SidewalkYes
	SidewalkSeparate // pavement exists as its own OSM way; no lane here
)

// SidewalkPartial is the output of the sidewalk scheme.
type SidewalkPartial struct {
	Left               SidewalkKind
	Right              SidewalkKind
	ShoulderSuppressed bool // `shoulder=no`: never fall back to a default shoulder
}

func parseSidewalkValue(raw string) SidewalkKind {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "none", "no":
		return SidewalkNone
	case "separate":
		return SidewalkSeparate
	case "":
		return SidewalkUnset
	default:
		return SidewalkYes
	}
}

// parseSidewalk reads `sidewalk`, `sidewalk:left`, `sidewalk:right`,
// `sidewalk:both`. Per spec's specificity rule, a side-specific key
// overrides the side-agnostic one when both are present, with a
// TagConflict warning.
func parseSidewalk(t *tags.Tags) (SidewalkPartial, []diag.Diagnostic) {
	var ds []diag.Diagnostic
	var p SidewalkPartial

	general := SidewalkUnset
	if raw, ok := t.GetConsume("sidewalk"); ok {
		general = parseSidewalkValue(raw)
	}
	if raw, ok := t.GetConsume("sidewalk:both"); ok {
		k := parseSidewalkValue(raw)
		general = k
	}
	p.Left, p.Right = general, general

	if raw, ok := t.GetConsume("sidewalk:left"); ok {
		k := parseSidewalkValue(raw)
		if general != SidewalkUnset && k != general {
			ds = append(ds, diag.Warningf(diag.TagConflict, []string{"sidewalk", "sidewalk:left"}, "sidewalk:left=%q overrides sidewalk", raw))
		}
		p.Left = k
	}
	if raw, ok := t.GetConsume("sidewalk:right"); ok {
		k := parseSidewalkValue(raw)
		if general != SidewalkUnset && k != general {
			ds = append(ds, diag.Warningf(diag.TagConflict, []string{"sidewalk", "sidewalk:right"}, "sidewalk:right=%q overrides sidewalk", raw))
		}
		p.Right = k
	}

	if raw, ok := t.GetConsume("shoulder"); ok {
		p.ShoulderSuppressed = strings.ToLower(strings.TrimSpace(raw)) == "no"
	}

	return p, ds
}
