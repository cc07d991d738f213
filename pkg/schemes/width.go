package schemes

import (
	"strings"

	"osm2lanes/pkg/diag"
	"osm2lanes/pkg/tags"
)

// WidthPartial is the output of the width scheme.
type WidthPartial struct {
	Overall        *float64
	PerLane        []*float64 // nil entries mean "no override for this lane"
	CyclewayWidth  *float64
	SidewalkWidth  *float64
}

// parseWidth reads `width`, `width:lanes`, `cycleway:width`,
// `sidewalk:width`, all in metres (bare numbers) or with an explicit
// `m`/`ft`/`'` suffix. A negative width is always an error; a value that
// fails to parse at all is a structural UnitParseFailure.
func parseWidth(t *tags.Tags) (WidthPartial, []diag.Diagnostic) {
	var p WidthPartial

	if raw, ok := t.GetConsume("width"); ok {
		v, err := parseLengthMeters(raw)
		if err != nil {
			return WidthPartial{}, []diag.Diagnostic{
				diag.Errorf(diag.UnitParseFailure, []string{"width"}, "%v", err),
			}
		}
		if v < 0 {
			return WidthPartial{}, []diag.Diagnostic{
				diag.Errorf(diag.NegativeWidth, []string{"width"}, "width=%q is negative", raw),
			}
		}
		p.Overall = &v
	}

	if raw, ok := t.GetConsume("width:lanes"); ok {
		segs := strings.Split(raw, "|")
		p.PerLane = make([]*float64, len(segs))
		for i, seg := range segs {
			seg = strings.TrimSpace(seg)
			if seg == "" {
				continue
			}
			v, err := parseLengthMeters(seg)
			if err != nil {
				return WidthPartial{}, []diag.Diagnostic{
					diag.Errorf(diag.UnitParseFailure, []string{"width:lanes"}, "%v", err),
				}
			}
			if v < 0 {
				return WidthPartial{}, []diag.Diagnostic{
					diag.Errorf(diag.NegativeWidth, []string{"width:lanes"}, "width:lanes segment %q is negative", seg),
				}
			}
			p.PerLane[i] = &v
		}
	}

	if raw, ok := t.GetConsume("cycleway:width"); ok {
		v, err := parseLengthMeters(raw)
		if err != nil {
			return WidthPartial{}, []diag.Diagnostic{
				diag.Errorf(diag.UnitParseFailure, []string{"cycleway:width"}, "%v", err),
			}
		}
		if v < 0 {
			return WidthPartial{}, []diag.Diagnostic{
				diag.Errorf(diag.NegativeWidth, []string{"cycleway:width"}, "cycleway:width=%q is negative", raw),
			}
		}
		p.CyclewayWidth = &v
	}

	if raw, ok := t.GetConsume("sidewalk:width"); ok {
		v, err := parseLengthMeters(raw)
		if err != nil {
			return WidthPartial{}, []diag.Diagnostic{
				diag.Errorf(diag.UnitParseFailure, []string{"sidewalk:width"}, "%v", err),
			}
		}
		if v < 0 {
			return WidthPartial{}, []diag.Diagnostic{
				diag.Errorf(diag.NegativeWidth, []string{"sidewalk:width"}, "sidewalk:width=%q is negative", raw),
			}
		}
		p.SidewalkWidth = &v
	}

	return p, nil
}
