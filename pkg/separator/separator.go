// Package separator implements the Separator Placer: the pass that walks an
// assembled lane list and inserts a Separator lane between every adjacent
// non-separator pair and at both road edges (spec §4.4).
package separator

import (
	"osm2lanes/pkg/config"
	"osm2lanes/pkg/lanes"
	"osm2lanes/pkg/locale"
)

// Place inserts a Separator between every pair of adjacent lanes in ls and
// at each end, choosing the semantic and markings from the neighbor pair
// per the selection table. Returns ls unchanged if cfg.IncludeSeparators is
// false.
func Place(ls []lanes.Lane, loc locale.Locale, cfg config.Config) []lanes.Lane {
	if !cfg.IncludeSeparators || len(ls) == 0 {
		return ls
	}

	out := make([]lanes.Lane, 0, 2*len(ls)+1)
	out = append(out, edgeSeparator(ls[0], true))
	out = append(out, ls[0])
	for i := 1; i < len(ls); i++ {
		out = append(out, between(ls[i-1], ls[i], loc))
		out = append(out, ls[i])
	}
	out = append(out, edgeSeparator(ls[len(ls)-1], false))

	return out
}

// between picks the semantic and markings for the separator sitting
// between left and right, per spec §4.4's selection table.
func between(left, right lanes.Lane, loc locale.Locale) lanes.Separator {
	lt, lIsTravel := left.(lanes.Travel)
	rt, rIsTravel := right.(lanes.Travel)

	switch {
	case lIsTravel && rIsTravel && lt.Designated == lanes.MotorVehicle && rt.Designated == lanes.MotorVehicle &&
		lt.Direction != rt.Direction && lt.Direction != lanes.Both && rt.Direction != lanes.Both:
		// Direction flips between two motor-vehicle travel lanes: this is
		// the boundary between the two driving blocks, wherever the
		// driving-side convention happens to put Forward and Backward.
		return centreSeparator(loc)

	case lIsTravel && rIsTravel && lt.Designated == lanes.MotorVehicle && rt.Designated == lanes.MotorVehicle:
		return laneSeparator()

	case lIsTravel && rIsTravel && isBicycle(lt) != isBicycle(rt) && (lt.Designated == lanes.MotorVehicle || rt.Designated == lanes.MotorVehicle):
		return modalSeparator()

	case isShoulderLike(left) || isShoulderLike(right):
		return shoulderSeparator()

	default:
		return laneSeparator()
	}
}

func isBicycle(t lanes.Travel) bool { return t.Designated == lanes.Bicycle }

func isShoulderLike(l lanes.Lane) bool {
	switch v := l.(type) {
	case lanes.Shoulder:
		return true
	case lanes.Travel:
		return v.Designated == lanes.Foot
	default:
		return false
	}
}

// edgeSeparator marks the outer road edge. It carries SemShoulder when a
// Shoulder lane already sits there (the pavement boundary), SemEdge
// otherwise — a plain edge-of-pavement marker with no special meaning.
func edgeSeparator(adjacent lanes.Lane, leading bool) lanes.Separator {
	if _, ok := adjacent.(lanes.Shoulder); ok {
		return shoulderSeparator()
	}
	return lanes.Separator{
		Semantic: lanes.SemEdge,
		Markings: []lanes.Marking{{Style: lanes.SolidLine}},
	}
}

func centreSeparator(loc locale.Locale) lanes.Separator {
	gap := 0.1
	color := lanes.White
	if loc.DefaultCentreLineColor() == "yellow" {
		color = lanes.Yellow
	}
	return lanes.Separator{
		Semantic: lanes.SemCentre,
		Markings: []lanes.Marking{
			{Style: lanes.SolidLine, Color: &color},
			{Style: lanes.NoFill, WidthM: &gap},
			{Style: lanes.SolidLine, Color: &color},
		},
	}
}

func laneSeparator() lanes.Separator {
	white := lanes.White
	return lanes.Separator{
		Semantic: lanes.SemLane,
		Markings: []lanes.Marking{{Style: lanes.BrokenLine, Color: &white}},
	}
}

func modalSeparator() lanes.Separator {
	white := lanes.White
	return lanes.Separator{
		Semantic: lanes.SemModal,
		Markings: []lanes.Marking{{Style: lanes.SolidLine, Color: &white}},
	}
}

func shoulderSeparator() lanes.Separator {
	white := lanes.White
	return lanes.Separator{
		Semantic: lanes.SemShoulder,
		Markings: []lanes.Marking{{Style: lanes.SolidLine, Color: &white}},
	}
}
