package schemes

import (
	"strings"

	"osm2lanes/pkg/diag"
	"osm2lanes/pkg/tags"
)

// parseCentreTurn reads `centre_turn_lane`. Per spec's resolved open
// question (§9), a centre turn lane is never inferred from an odd `lanes`
// count alone — only an explicit `centre_turn_lane=yes` or
// `lanes:both_ways>=1` (already captured in lc.Centre) triggers it.
func parseCentreTurn(t *tags.Tags, lc LaneCountPartial) (bool, []diag.Diagnostic) {
	explicit := false
	if raw, ok := t.GetConsume("centre_turn_lane"); ok {
		explicit = strings.ToLower(strings.TrimSpace(raw)) == "yes"
	}
	return explicit || lc.Centre >= 1, nil
}
