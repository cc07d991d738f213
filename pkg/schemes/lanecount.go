package schemes

import (
	"strconv"
	"strings"

	"osm2lanes/pkg/diag"
	"osm2lanes/pkg/locale"
	"osm2lanes/pkg/tags"
)

// LaneCountPartial is the output of the lane-count scheme: how many
// MotorVehicle travel lanes face forward, backward, and (if a centre turn
// lane is tagged) the shared centre. Explicit records whether any of
// `lanes`/`lanes:forward`/`lanes:backward` was present, telling a truly
// silent way from one that just happened to resolve to symmetric
// defaults; the assembler does not read it.
type LaneCountPartial struct {
	Forward  int
	Backward int
	Centre   int
	Explicit bool
}

// parseLaneCount reads `lanes`, `lanes:forward`, `lanes:backward`, and
// `lanes:both_ways`. When only the bare `lanes` count is given, it is split
// by driving side: whichever direction the locale's driving side favors
// receives the extra lane for an odd count (the concrete worked example in
// the spec resolves the "lanes/2 forward vs backward" ambiguity this way;
// see DESIGN.md).
func parseLaneCount(t *tags.Tags, loc locale.Locale, ow OnewayPartial) (LaneCountPartial, []diag.Diagnostic) {
	var ds []diag.Diagnostic

	fwdRaw, hasFwd := t.GetConsume("lanes:forward")
	bwdRaw, hasBwd := t.GetConsume("lanes:backward")
	bothRaw, hasBoth := t.GetConsume("lanes:both_ways")
	lanesRaw, hasLanes := t.GetConsume("lanes")

	var centre int
	if hasBoth {
		n, err := strconv.Atoi(strings.TrimSpace(bothRaw))
		if err != nil || n < 0 {
			ds = append(ds, diag.Warningf(diag.DeprecatedTagForm, []string{"lanes:both_ways"}, "ignoring malformed lanes:both_ways=%q", bothRaw))
		} else {
			centre = n
		}
	}

	if hasFwd || hasBwd {
		fwd, bwd := 0, 0
		var err error
		if hasFwd {
			if fwd, err = strconv.Atoi(strings.TrimSpace(fwdRaw)); err != nil || fwd < 0 {
				return LaneCountPartial{}, []diag.Diagnostic{
					diag.Errorf(diag.MalformedLaneCount, []string{"lanes:forward"}, "malformed lanes:forward=%q", fwdRaw),
				}
			}
		}
		if hasBwd {
			if bwd, err = strconv.Atoi(strings.TrimSpace(bwdRaw)); err != nil || bwd < 0 {
				return LaneCountPartial{}, []diag.Diagnostic{
					diag.Errorf(diag.MalformedLaneCount, []string{"lanes:backward"}, "malformed lanes:backward=%q", bwdRaw),
				}
			}
		}
		if ow.Oneway && bwd > 0 {
			ds = append(ds, diag.Warningf(diag.InconsistentOneway, []string{"oneway", "lanes:backward"}, "oneway=yes but lanes:backward=%d", bwd))
		}
		return LaneCountPartial{Forward: fwd, Backward: bwd, Centre: centre, Explicit: true}, ds
	}

	if hasLanes {
		n, err := strconv.Atoi(strings.TrimSpace(lanesRaw))
		if err != nil {
			return LaneCountPartial{}, []diag.Diagnostic{
				diag.Errorf(diag.MalformedLaneCount, []string{"lanes"}, "malformed lanes=%q", lanesRaw),
			}
		}
		if n <= 0 {
			return LaneCountPartial{}, []diag.Diagnostic{
				diag.Errorf(diag.MalformedLaneCount, []string{"lanes"}, "lanes=%d must be positive", n),
			}
		}

		if ow.Oneway {
			if ow.Reversed {
				return LaneCountPartial{Forward: 0, Backward: n, Centre: centre, Explicit: true}, ds
			}
			return LaneCountPartial{Forward: n, Backward: 0, Centre: centre, Explicit: true}, ds
		}

		fwd, bwd := splitByDrivingSide(n, loc.DrivingSide)
		return LaneCountPartial{Forward: fwd, Backward: bwd, Centre: centre, Explicit: true}, ds
	}

	// Nothing tagged: default to one lane per direction, or all-forward for
	// a oneway way (spec §4.2 Lane count row, "Default when absent").
	if ow.Oneway {
		if ow.Reversed {
			return LaneCountPartial{Forward: 0, Backward: 1, Centre: centre}, ds
		}
		return LaneCountPartial{Forward: 1, Backward: 0, Centre: centre}, ds
	}
	return LaneCountPartial{Forward: 1, Backward: 1, Centre: centre}, ds
}

// splitByDrivingSide divides an undirected lane count into forward and
// backward counts. The side whose traffic travels in the locale's driving
// direction gets the extra lane when n is odd.
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
