package schemes

import (
	"strings"

	"osm2lanes/pkg/diag"
	"osm2lanes/pkg/tags"
)

// OnewayPartial is the output of the oneway scheme. Reversed records that
// the input used `oneway=-1`; parseLaneCount uses it to put every lane of
// the way in the Backward block instead of the Forward one.
type OnewayPartial struct {
	Oneway          bool
	BicycleExempt   bool // oneway:bicycle=no: cyclists may go both ways anyway
	Reversed        bool
	ExplicitBackward bool // not set by parseOneway; parseLaneCount reports lanes:backward with oneway=yes as InconsistentOneway
}

// parseOneway reads `oneway` and `oneway:bicycle`. Per spec's value
// normalization rules, `-1` is rewritten to `oneway=yes` + Reversed, so
// downstream Direction assignment can stay oblivious to the `-1` spelling.
func parseOneway(t *tags.Tags) (OnewayPartial, []diag.Diagnostic) {
	var p OnewayPartial
	var ds []diag.Diagnostic

	raw, ok := t.GetConsume("oneway")
	if ok {
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "yes", "true", "1":
			p.Oneway = true
		case "-1", "reverse":
			p.Oneway = true
			p.Reversed = true
		case "no", "false", "0":
			p.Oneway = false
		default:
			ds = append(ds, diag.Warningf(diag.UnknownValue, []string{"oneway"}, "unrecognized oneway value %q, treating as no", raw))
		}
	}

	if bike, ok := t.GetConsume("oneway:bicycle"); ok {
		if strings.ToLower(strings.TrimSpace(bike)) == "no" {
			p.BicycleExempt = true
		}
	}

	return p, ds
}
