package schemes

import (
	"strings"

	"osm2lanes/pkg/diag"
	"osm2lanes/pkg/lanes"
	"osm2lanes/pkg/tags"
)

// AccessPartial is the output of the access scheme: way-level per-mode
// access plus per-lane overrides for the three modes that carry a
// `*:lanes` form not already claimed by the per-lane modal scheme (which
// owns `bus:lanes`/`psv:lanes`/`bicycle:lanes`/`vehicle:lanes` — see
// DESIGN.md for this tag-ownership split).
type AccessPartial struct {
	General      *lanes.Access
	ByMode       map[string]lanes.Access // "bicycle", "foot", "motor_vehicle", "bus", "psv"
	AccessLanes  []*lanes.Access
	FootLanes    []*lanes.Access
	MotorLanes   []*lanes.Access
}

func parseAccessValue(raw string) (lanes.Access, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes":
		return lanes.AccessYes, true
	case "no":
		return lanes.AccessNo, true
	case "designated":
		return lanes.AccessDesignated, true
	case "private":
		return lanes.AccessPrivate, true
	case "permissive":
		return lanes.AccessPermissive, true
	default:
		return "", false
	}
}

func parseAccessLaneList(raw string) []*lanes.Access {
	segs := strings.Split(raw, "|")
	out := make([]*lanes.Access, len(segs))
	for i, seg := range segs {
		if v, ok := parseAccessValue(seg); ok {
			vv := v
			out[i] = &vv
		}
	}
	return out
}

// parseAccess reads `access`, `bicycle`, `foot`, `motor_vehicle`, `bus`,
// `psv` (way-level) and `access:lanes`, `foot:lanes`, `motor_vehicle:lanes`
// (per-lane).
func parseAccess(t *tags.Tags) (AccessPartial, []diag.Diagnostic) {
	var ds []diag.Diagnostic
	p := AccessPartial{ByMode: map[string]lanes.Access{}}

	if raw, ok := t.GetConsume("access"); ok {
		if v, ok := parseAccessValue(raw); ok {
			p.General = &v
		} else {
			ds = append(ds, diag.Warningf(diag.UnknownValue, []string{"access"}, "unrecognized access value %q", raw))
		}
	}

	for _, mode := range []string{"bicycle", "foot", "motor_vehicle", "bus", "psv"} {
		raw, ok := t.GetConsume(mode)
		if !ok {
			continue
		}
		if v, ok := parseAccessValue(raw); ok {
			p.ByMode[mode] = v
		} else {
			ds = append(ds, diag.Warningf(diag.UnknownValue, []string{mode}, "unrecognized %s value %q", mode, raw))
		}
	}

	if raw, ok := t.GetConsume("access:lanes"); ok {
		p.AccessLanes = parseAccessLaneList(raw)
	}
	if raw, ok := t.GetConsume("foot:lanes"); ok {
		p.FootLanes = parseAccessLaneList(raw)
	}
	if raw, ok := t.GetConsume("motor_vehicle:lanes"); ok {
		p.MotorLanes = parseAccessLaneList(raw)
	}

	return p, ds
}
