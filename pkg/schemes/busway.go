package schemes

import (
	"strings"

	"osm2lanes/pkg/diag"
	"osm2lanes/pkg/tags"
)

// BuswayPartial is the output of the busway scheme: whether each side gets
// a dedicated bus travel lane.
type BuswayPartial struct {
	Left, Right bool
}

func buswayPresent(raw string) bool {
	return strings.ToLower(strings.TrimSpace(raw)) == "lane"
}

// parseBusway reads `busway`, `busway:left`, `busway:right`, `busway:both`.
func parseBusway(t *tags.Tags) (BuswayPartial, []diag.Diagnostic) {
	var ds []diag.Diagnostic
	var p BuswayPartial

	generalSet := false
	general := false
	if raw, ok := t.GetConsume("busway"); ok {
		general = buswayPresent(raw)
		generalSet = true
	}
	if raw, ok := t.GetConsume("busway:both"); ok {
		general = buswayPresent(raw)
		generalSet = true
	}
	p.Left, p.Right = general, general

	if raw, ok := t.GetConsume("busway:left"); ok {
		v := buswayPresent(raw)
		if generalSet && v != general {
			ds = append(ds, diag.Warningf(diag.TagConflict, []string{"busway", "busway:left"}, "busway:left=%q overrides busway", raw))
		}
		p.Left = v
	}
	if raw, ok := t.GetConsume("busway:right"); ok {
		v := buswayPresent(raw)
		if generalSet && v != general {
			ds = append(ds, diag.Warningf(diag.TagConflict, []string{"busway", "busway:right"}, "busway:right=%q overrides busway", raw))
		}
		p.Right = v
	}

	return p, ds
}
