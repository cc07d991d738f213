// Package transform wires the whole tag-to-lanes pipeline together behind
// two entry points: TagsToLanes and LanesToTags (spec §6).
package transform

import (
	"osm2lanes/pkg/assemble"
	"osm2lanes/pkg/config"
	"osm2lanes/pkg/diag"
	"osm2lanes/pkg/lanes"
	"osm2lanes/pkg/locale"
	"osm2lanes/pkg/project"
	"osm2lanes/pkg/schemes"
	"osm2lanes/pkg/separator"
	"osm2lanes/pkg/tags"
)

// TagsToLanes runs the Tag Store through the scheme parsers, the Road
// Assembler, and the Separator Placer, returning the assembled Road plus
// every diagnostic collected along the way. If any diagnostic carries
// Severity Error — or cfg.ErrorOnWarnings promotes the first Warning — it
// returns a zero Road and a non-nil error satisfying errors.Is against the
// matching diag.ErrXxx sentinel.
func TagsToLanes(values map[string]string, loc locale.Locale, cfg config.Config) (lanes.Road, []diag.Diagnostic, error) {
	t := tags.New(values)

	partials, ds := schemes.ParseAll(t, loc)
	if err := diag.FromDiagnostics(ds); err != nil {
		return lanes.Road{}, ds, err
	}

	road, assembleDs := assemble.Assemble(partials, loc, cfg)
	ds = append(ds, assembleDs...)
	if err := diag.FromDiagnostics(ds); err != nil {
		return lanes.Road{}, ds, err
	}

	for _, key := range t.Unused() {
		if schemes.IsKnownKey(key) {
			ds = append(ds, diag.Warningf(diag.UnconsumedKnownTag, []string{key}, "tag %q was recognized but never consumed", key))
		}
	}

	road.Lanes = separator.Place(road.Lanes, loc, cfg)

	if cfg.ErrorOnWarnings {
		if err := promoteFirstWarning(ds); err != nil {
			return lanes.Road{}, ds, err
		}
	}

	diag.SortForDeterminism(ds)
	return road, ds, nil
}

// LanesToTags runs the Road back through the Lanes-to-Tags Projector.
// original, if non-nil, is passed through to project.Project so any tag
// key outside the recognized schemes survives the round trip.
func LanesToTags(road lanes.Road, loc locale.Locale, cfg config.Config, original map[string]string) (map[string]string, []diag.Diagnostic) {
	var passthrough *tags.Tags
	if original != nil {
		passthrough = tags.New(original)
	}

	result, ds := project.Project(road, loc, cfg, passthrough)
	return result.Map(), ds
}

func promoteFirstWarning(ds []diag.Diagnostic) error {
	for _, d := range ds {
		if d.Severity == diag.Warning {
			return &diag.Err{Code: d.Code, Message: d.Message, OffendingKeys: d.OffendingKeys, All: ds}
		}
	}
	return nil
}
