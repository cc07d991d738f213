package schemes

import (
	"strings"

	"osm2lanes/pkg/diag"
	"osm2lanes/pkg/lanes"
	"osm2lanes/pkg/tags"
)

// HighwayPartial is the output of the highway-class scheme.
type HighwayPartial struct {
	Class lanes.HighwayClass
	Known bool
}

// recognizedHighways lists every `highway=*` value this transform knows
// how to assemble. Static, read-only, safe for concurrent reads.
var recognizedHighways = map[string]lanes.HighwayClass{
	"motorway":      lanes.Motorway,
	"trunk":         lanes.Trunk,
	"primary":       lanes.Primary,
	"secondary":     lanes.Secondary,
	"tertiary":      lanes.Tertiary,
	"unclassified":  lanes.Unclassified,
	"residential":   lanes.Residential,
	"living_street": lanes.LivingStreet,
	"service":       lanes.Service,
	"footway":       lanes.Footway,
	"cycleway":      lanes.Cycleway,
	"path":          lanes.Path,
	"pedestrian":    lanes.Pedestrian,
	"construction":  lanes.ConstructionClass,
	// "_link" variants assemble like their parent class.
	"motorway_link":  lanes.Motorway,
	"trunk_link":     lanes.Trunk,
	"primary_link":   lanes.Primary,
	"secondary_link": lanes.Secondary,
	"tertiary_link":  lanes.Tertiary,
}

// parseHighway reads the `highway` tag. A missing tag is tolerated (it
// defaults to a generic two-way road, per spec's empty-tag-set boundary
// case); a *present but unrecognized* value is a structural error, since
// the assembler has no idea how many travel lanes such a way should get.
func parseHighway(t *tags.Tags) (HighwayPartial, []diag.Diagnostic) {
	raw, ok := t.GetConsume("highway")
	if !ok {
		return HighwayPartial{Class: lanes.Unclassified, Known: true}, nil
	}

	class, known := recognizedHighways[strings.ToLower(strings.TrimSpace(raw))]
	if !known {
		return HighwayPartial{}, []diag.Diagnostic{
			diag.Errorf(diag.UnknownHighwayClass, []string{"highway"}, "unrecognized highway class %q", raw),
		}
	}

	return HighwayPartial{Class: class, Known: true}, nil
}
