package schemes

import (
	"strings"

	"osm2lanes/pkg/diag"
	"osm2lanes/pkg/lanes"
	"osm2lanes/pkg/tags"
)

// turnValues maps the OSM turn-lane vocabulary to lanes.TurnMark.
var turnValues = map[string]lanes.TurnMark{
	"left":         lanes.TurnLeft,
	"slight_left":  lanes.TurnSlightLeft,
	"sharp_left":   lanes.TurnSharpLeft,
	"through":      lanes.TurnThrough,
	"right":        lanes.TurnRight,
	"slight_right": lanes.TurnSlightRight,
	"sharp_right":  lanes.TurnSharpRight,
	"reverse":      lanes.TurnReverse,
	"merge_to_left":  lanes.TurnMergeLeft,
	"merge_to_right": lanes.TurnMergeRight,
}

// TurnOverride is one `turn:lanes[:forward|:backward]` tag's parsed
// bar/semicolon-separated segments, positional like ModalOverride.
type TurnOverride struct {
	Directional string // "", "forward", or "backward"
	Segments    [][]lanes.TurnMark
	Key         string
}

// TurnPartial is the output of the turn-markings scheme.
type TurnPartial struct {
	Overrides []TurnOverride
}

// parseTurn reads `turn:lanes`, `turn:lanes:forward`, `turn:lanes:backward`.
// Each `|`-separated segment may itself be `;`-joined for a lane with
// multiple permitted movements (e.g. "through;right").
func parseTurn(t *tags.Tags) (TurnPartial, []diag.Diagnostic) {
	var p TurnPartial
	var ds []diag.Diagnostic

	for _, suffix := range []string{"", ":forward", ":backward"} {
		key := "turn:lanes" + suffix
		raw, ok := t.GetConsume(key)
		if !ok {
			continue
		}
		laneSegs := strings.Split(raw, "|")
		segments := make([][]lanes.TurnMark, len(laneSegs))
		for i, seg := range laneSegs {
			seg = strings.TrimSpace(seg)
			if seg == "" || seg == "none" {
				continue
			}
			for _, part := range strings.Split(seg, ";") {
				part = strings.ToLower(strings.TrimSpace(part))
				mark, known := turnValues[part]
				if !known {
					ds = append(ds, diag.Warningf(diag.UnknownValue, []string{key}, "unrecognized turn marking %q", part))
					continue
				}
				segments[i] = append(segments[i], mark)
			}
		}
		dir := strings.TrimPrefix(suffix, ":")
		p.Overrides = append(p.Overrides, TurnOverride{Directional: dir, Segments: segments, Key: key})
	}

	return p, ds
}
