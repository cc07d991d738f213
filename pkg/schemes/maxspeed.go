package schemes

import (
	"strings"

	"osm2lanes/pkg/diag"
	"osm2lanes/pkg/lanes"
	"osm2lanes/pkg/locale"
	"osm2lanes/pkg/tags"
)

// MaxSpeedPartial is the output of the max-speed scheme.
type MaxSpeedPartial struct {
	Overall  *lanes.Speed
	Forward  *lanes.Speed
	Backward *lanes.Speed
	PerLane  []*lanes.Speed
}

// parseMaxSpeed reads `maxspeed`, `maxspeed:forward`, `maxspeed:backward`,
// `maxspeed:lanes`. Bare numeric values are interpreted in the locale's
// default speed unit (mph in US/GB/LR/MM, km/h elsewhere).
func parseMaxSpeed(t *tags.Tags, loc locale.Locale) (MaxSpeedPartial, []diag.Diagnostic) {
	var p MaxSpeedPartial
	unit := loc.DefaultSpeedUnit()

	parseOne := func(key string) (*lanes.Speed, *diag.Diagnostic) {
		raw, ok := t.GetConsume(key)
		if !ok {
			return nil, nil
		}
		v, u, err := parseSpeed(raw, unit)
		if err != nil {
			d := diag.Errorf(diag.UnitParseFailure, []string{key}, "%v", err)
			return nil, &d
		}
		return &lanes.Speed{Unit: u, Value: v}, nil
	}

	if v, errd := parseOne("maxspeed"); errd != nil {
		return MaxSpeedPartial{}, []diag.Diagnostic{*errd}
	} else {
		p.Overall = v
	}
	if v, errd := parseOne("maxspeed:forward"); errd != nil {
		return MaxSpeedPartial{}, []diag.Diagnostic{*errd}
	} else {
		p.Forward = v
	}
	if v, errd := parseOne("maxspeed:backward"); errd != nil {
		return MaxSpeedPartial{}, []diag.Diagnostic{*errd}
	} else {
		p.Backward = v
	}

	if raw, ok := t.GetConsume("maxspeed:lanes"); ok {
		segs := strings.Split(raw, "|")
		p.PerLane = make([]*lanes.Speed, len(segs))
		for i, seg := range segs {
			seg = strings.TrimSpace(seg)
			if seg == "" {
				continue
			}
			v, u, err := parseSpeed(seg, unit)
			if err != nil {
				return MaxSpeedPartial{}, []diag.Diagnostic{
					diag.Errorf(diag.UnitParseFailure, []string{"maxspeed:lanes"}, "%v", err),
				}
			}
			p.PerLane[i] = &lanes.Speed{Unit: u, Value: v}
		}
	}

	return p, nil
}
