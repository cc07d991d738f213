package assemble

import (
	"strings"

	"osm2lanes/pkg/config"
	"osm2lanes/pkg/diag"
	"osm2lanes/pkg/lanes"
	"osm2lanes/pkg/locale"
	"osm2lanes/pkg/schemes"
)

// applyModalOverrides sets Designated on positional travel lanes named by
// `bus:lanes`/`psv:lanes`/`bicycle:lanes`/`vehicle:lanes` (spec §4.3 step
// 3). Only the literal "designated" segment changes a lane; "no", empty,
// and any other value leave the lane's existing designation untouched —
// a short bar-string is not license to blank out lanes it didn't mention.
func applyModalOverrides(main []lanes.Lane, blocks travelBlocks, modal schemes.ModalPartial) []diag.Diagnostic {
	var ds []diag.Diagnostic

	for _, ov := range modal.Overrides {
		start, count := rangeFor(ov.Directional, blocks, len(main))

		for i, seg := range ov.Segments {
			if i >= count {
				ds = append(ds, diag.Warningf(diag.LaneCountMismatch, []string{ov.Key},
					"%s has more entries than travel lanes (%d > %d)", ov.Key, len(ov.Segments), count))
				break
			}
			if strings.ToLower(seg) != "designated" {
				continue
			}
			idx := start + i
			if t, ok := main[idx].(lanes.Travel); ok {
				t.Designated = ov.Mode
				main[idx] = t
			}
		}
	}

	return ds
}

// applyTurnOverrides sets TurnMarkings on positional travel lanes named by
// `turn:lanes[:forward|:backward]`.
func applyTurnOverrides(main []lanes.Lane, blocks travelBlocks, turn schemes.TurnPartial) []diag.Diagnostic {
	var ds []diag.Diagnostic

	for _, ov := range turn.Overrides {
		start, count := rangeFor(ov.Directional, blocks, len(main))

		for i, marks := range ov.Segments {
			if i >= count {
				ds = append(ds, diag.Warningf(diag.LaneCountMismatch, []string{ov.Key},
					"%s has more entries than travel lanes (%d > %d)", ov.Key, len(ov.Segments), count))
				break
			}
			if len(marks) == 0 {
				continue
			}
			idx := start + i
			if t, ok := main[idx].(lanes.Travel); ok {
				t.TurnMarkings = marks
				main[idx] = t
			}
		}
	}

	return ds
}

// rangeFor resolves a scheme's directional suffix ("", "forward",
// "backward") to a [start, start+count) window over main, per spec §4.3
// step 3's indexing rule.
func rangeFor(directional string, blocks travelBlocks, total int) (start, count int) {
	switch directional {
	case "forward":
		return blocks.forwardStart, blocks.forwardCount
	case "backward":
		return blocks.backwardStart, blocks.backwardCount
	default:
		return 0, total
	}
}

// applyWidth fills Travel.WidthM by specificity: per-lane value, then the
// way-wide `width`, then (if Config.InferDefaults) the locale's default
// for this highway class.
func applyWidth(main []lanes.Lane, w schemes.WidthPartial, loc locale.Locale, class lanes.HighwayClass, cfg config.Config) {
	def := loc.DefaultLaneWidthMeters(string(class))
	for i, l := range main {
		t, ok := l.(lanes.Travel)
		if !ok {
			continue
		}
		switch {
		case i < len(w.PerLane) && w.PerLane[i] != nil:
			t.WidthM = w.PerLane[i]
		case w.Overall != nil:
			t.WidthM = w.Overall
		case cfg.InferDefaults:
			v := def
			t.WidthM = &v
		}
		main[i] = t
	}
}

// applyMaxSpeed fills Travel.MaxSpeed by specificity: per-lane value, then
// the lane's own direction (`maxspeed:forward`/`maxspeed:backward`), then
// the way-wide `maxspeed`.
func applyMaxSpeed(main []lanes.Lane, ms schemes.MaxSpeedPartial) {
	for i, l := range main {
		t, ok := l.(lanes.Travel)
		if !ok {
			continue
		}
		switch {
		case i < len(ms.PerLane) && ms.PerLane[i] != nil:
			t.MaxSpeed = ms.PerLane[i]
		case t.Direction == lanes.Forward && ms.Forward != nil:
			t.MaxSpeed = ms.Forward
		case t.Direction == lanes.Backward && ms.Backward != nil:
			t.MaxSpeed = ms.Backward
		case ms.Overall != nil:
			t.MaxSpeed = ms.Overall
		}
		main[i] = t
	}
}

// applyAccess fills Travel.Access by specificity: `access:lanes`/
// `motor_vehicle:lanes`, then `motor_vehicle`, then the way-wide `access`.
func applyAccess(main []lanes.Lane, ac schemes.AccessPartial) {
	for i, l := range main {
		t, ok := l.(lanes.Travel)
		if !ok {
			continue
		}
		switch {
		case i < len(ac.AccessLanes) && ac.AccessLanes[i] != nil:
			t.Access = ac.AccessLanes[i]
		case i < len(ac.MotorLanes) && ac.MotorLanes[i] != nil:
			t.Access = ac.MotorLanes[i]
		default:
			if v, ok := ac.ByMode["motor_vehicle"]; ok {
				t.Access = &v
			} else if ac.General != nil {
				t.Access = ac.General
			}
		}
		main[i] = t
	}
}
