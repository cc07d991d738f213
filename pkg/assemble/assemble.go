// Package assemble builds the ordered lane list from scheme partials using
// the inside-out algorithm described in spec §4.3: seed the motor-vehicle
// travel lanes down the median, then grow each side outward independently
// (bus, then parking, then cycleway, then shoulder/sidewalk), then apply
// per-lane overrides by position.
package assemble

import (
	"osm2lanes/pkg/config"
	"osm2lanes/pkg/diag"
	"osm2lanes/pkg/lanes"
	"osm2lanes/pkg/locale"
	"osm2lanes/pkg/schemes"
)

// Assemble turns one way's parsed scheme partials into an ordered lane
// list (without separators — see package separator for that pass).
func Assemble(p schemes.Partials, loc locale.Locale, cfg config.Config) (lanes.Road, []diag.Diagnostic) {
	var ds []diag.Diagnostic

	switch {
	case p.Highway.Class == lanes.ConstructionClass:
		return lanes.Road{
			HighwayClass: lanes.ConstructionClass,
			Lanes:        []lanes.Lane{lanes.Construction{WidthM: p.Width.Overall}},
		}, nil

	case nonVehicleClass(p.Highway.Class):
		return lanes.Road{
			HighwayClass: p.Highway.Class,
			Lanes: []lanes.Lane{
				lanes.Travel{Direction: lanes.NoDir, Designated: lanes.Foot, WidthM: p.Width.Overall},
			},
		}, nil
	}

	main, blocks := seedTravelLanes(p.LaneCount, p.CentreTurn, loc)

	overrideDs := applyModalOverrides(main, blocks, p.Modal)
	ds = append(ds, overrideDs...)

	turnDs := applyTurnOverrides(main, blocks, p.Turn)
	ds = append(ds, turnDs...)

	applyWidth(main, p.Width, loc, p.Highway.Class, cfg)
	applyMaxSpeed(main, p.MaxSpeed)
	applyAccess(main, p.Access)

	final := make([]lanes.Lane, len(main))
	copy(final, main)

	final = growSide(final, true /* left */, blocks.leftDir, p, loc, cfg)
	final = growSide(final, false /* right */, blocks.rightDir, p, loc, cfg)

	road := lanes.Road{
		HighwayClass: p.Highway.Class,
		Lanes:        final,
	}
	if p.Lit != nil {
		road.Lit = p.Lit
	}

	return road, ds
}

func nonVehicleClass(c lanes.HighwayClass) bool {
	switch c {
	case lanes.Footway, lanes.Cycleway, lanes.Path, lanes.Pedestrian:
		return true
	}
	return false
}

// travelBlocks records how the seeded main-travel slice is laid out, so
// per-lane overrides can be indexed "from the leftmost travel lane" or
// "from the forward-direction lanes" per spec §4.3 step 3.
type travelBlocks struct {
	leftDir       lanes.Direction // direction of the block nearest the left edge
	leftCount     int
	hasCentre     bool
	rightDir      lanes.Direction
	rightCount    int
	forwardStart  int // index of first Forward lane in main
	forwardCount  int
	backwardStart int // index of first Backward lane in main
	backwardCount int
}

// seedTravelLanes builds the initial motor-vehicle travel lane sequence in
// final left-to-right order: the direction whose traffic does NOT match
// the locale's driving side is placed left of the median (spec invariant
// 4), with the centre turn lane (if any) straddling the two blocks.
func seedTravelLanes(lc schemes.LaneCountPartial, centre bool, loc locale.Locale) ([]lanes.Lane, travelBlocks) {
	leftDir, rightDir := lanes.Backward, lanes.Forward
	leftCount, rightCount := lc.Backward, lc.Forward
	if loc.DrivingSide == locale.Left {
		leftDir, rightDir = lanes.Forward, lanes.Backward
		leftCount, rightCount = lc.Forward, lc.Backward
	}

	var main []lanes.Lane
	for i := 0; i < leftCount; i++ {
		main = append(main, lanes.Travel{Direction: leftDir, Designated: lanes.MotorVehicle})
	}
	if centre {
		main = append(main, lanes.Travel{Direction: lanes.Both, Designated: lanes.MotorVehicle})
	}
	rightStart := len(main)
	for i := 0; i < rightCount; i++ {
		main = append(main, lanes.Travel{Direction: rightDir, Designated: lanes.MotorVehicle})
	}

	// Record the Forward/Backward windows from the seeded directions,
	// before the fold below can relabel an empty block.
	var blocks travelBlocks
	if leftDir == lanes.Forward {
		blocks.forwardStart, blocks.forwardCount = 0, leftCount
		blocks.backwardStart, blocks.backwardCount = rightStart, rightCount
	} else {
		blocks.backwardStart, blocks.backwardCount = 0, leftCount
		blocks.forwardStart, blocks.forwardCount = rightStart, rightCount
	}

	// A oneway way has no lanes at all on one of these blocks. There is
	// then no directional split to speak of, so the empty block's
	// nominal direction folds onto whichever block actually has lanes —
	// otherwise growSide would plant bus/parking/cycleway/sidewalk lanes
	// on the "wrong" side of a road with no second direction to be wrong
	// about.
	if leftCount == 0 && rightCount > 0 {
		leftDir = rightDir
	} else if rightCount == 0 && leftCount > 0 {
		rightDir = leftDir
	}

	blocks.leftDir, blocks.leftCount, blocks.hasCentre = leftDir, leftCount, centre
	blocks.rightDir, blocks.rightCount = rightDir, rightCount

	return main, blocks
}
