package assemble

import (
	"osm2lanes/pkg/config"
	"osm2lanes/pkg/lanes"
	"osm2lanes/pkg/locale"
	"osm2lanes/pkg/schemes"
)

// growSide adds this side's bus/parking/cycleway/shoulder-or-sidewalk
// lanes outward from the travel lanes already in final, per spec §4.3
// step 2 and its outward tie-break order (travel → bus → parking →
// cycleway → shoulder/sidewalk). Left grows by prepending (so each
// addition lands further from the roadway than the last); right grows by
// appending.
func growSide(final []lanes.Lane, left bool, sideDir lanes.Direction, p schemes.Partials, loc locale.Locale, cfg config.Config) []lanes.Lane {
	add := func(l lanes.Lane) {
		if left {
			final = append([]lanes.Lane{l}, final...)
		} else {
			final = append(final, l)
		}
	}

	busway := p.Busway.Right
	parking := p.Parking.Right
	cycleway := p.Cycleway.Right
	sidewalk := p.Sidewalk.Right
	if left {
		busway = p.Busway.Left
		parking = p.Parking.Left
		cycleway = p.Cycleway.Left
		sidewalk = p.Sidewalk.Left
	}

	if busway {
		add(lanes.Travel{Direction: sideDir, Designated: lanes.Bus})
	}

	if parking.Present {
		add(lanes.Parking{Direction: sideDir, Designated: lanes.MotorVehicle, Orientation: parking.Orientation})
	}

	addCycleway(add, cycleway, sideDir, p)

	addSidewalkOrShoulder(add, sidewalk, p, cfg)

	return final
}

func addCycleway(add func(lanes.Lane), cw schemes.CyclewaySide, sideDir lanes.Direction, p schemes.Partials) {
	switch cw.Kind {
	case schemes.CyclewayNone:
		return
	case schemes.CyclewayOppositeTrack:
		add(lanes.Travel{Direction: oppositeOf(sideDir), Designated: lanes.Bicycle, WidthM: p.Width.CyclewayWidth})
		add(lanes.Travel{Direction: sideDir, Designated: lanes.Bicycle, WidthM: p.Width.CyclewayWidth})
	case schemes.CyclewayOppositeLane:
		add(lanes.Travel{Direction: oppositeOf(sideDir), Designated: lanes.Bicycle, WidthM: p.Width.CyclewayWidth})
	default: // CyclewayLane, CyclewayTrack, CyclewaySharedLane
		add(lanes.Travel{Direction: sideDir, Designated: lanes.Bicycle, WidthM: p.Width.CyclewayWidth})
	}
}

func addSidewalkOrShoulder(add func(lanes.Lane), sw schemes.SidewalkKind, p schemes.Partials, cfg config.Config) {
	switch sw {
	case schemes.SidewalkYes:
		add(lanes.Travel{Direction: lanes.NoDir, Designated: lanes.Foot, WidthM: p.Width.SidewalkWidth})
	case schemes.SidewalkNone:
		if cfg.IncludeShoulders {
			add(lanes.Shoulder{})
		}
	case schemes.SidewalkSeparate:
		// Pavement exists as its own way; this cross-section carries
		// nothing for it.
	case schemes.SidewalkUnset:
		if cfg.IncludeShoulders && !p.Sidewalk.ShoulderSuppressed {
			add(lanes.Shoulder{})
		}
	}
}

func oppositeOf(d lanes.Direction) lanes.Direction {
	switch d {
	case lanes.Forward:
		return lanes.Backward
	case lanes.Backward:
		return lanes.Forward
	default:
		return d
	}
}
