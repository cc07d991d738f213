package schemes

import (
	"strings"

	"osm2lanes/pkg/diag"
	"osm2lanes/pkg/lanes"
	"osm2lanes/pkg/tags"
)

// ModalOverride is one `*:lanes[:forward|:backward]` tag's parsed bar-
// separated segments, still positional (index 0 = leftmost for an
// undirected tag, leftmost of that direction's block for a directional
// one) — the assembler resolves positions against the final travel lane
// list.
type ModalOverride struct {
	Mode       lanes.Designated
	Directional string // "", "forward", or "backward"
	Segments   []string
	Key        string // originating tag key, for diagnostics
}

// ModalPartial is the output of the per-lane modal scheme.
type ModalPartial struct {
	Overrides []ModalOverride
}

// modalKeys maps each `*:lanes` tag prefix to the Designated it assigns.
var modalKeys = []struct {
	prefix string
	mode   lanes.Designated
}{
	{"bus:lanes", lanes.Bus},
	{"psv:lanes", lanes.Psv},
	{"bicycle:lanes", lanes.Bicycle},
	{"vehicle:lanes", lanes.MotorVehicle},
}

// parseModal reads `bus:lanes`, `psv:lanes`, `bicycle:lanes`,
// `vehicle:lanes`, each optionally suffixed `:forward`/`:backward`,
// splitting on `|` into one segment per travel lane.
func parseModal(t *tags.Tags) (ModalPartial, []diag.Diagnostic) {
	var p ModalPartial

	for _, mk := range modalKeys {
		for _, suffix := range []string{"", ":forward", ":backward"} {
			key := mk.prefix + suffix
			raw, ok := t.GetConsume(key)
			if !ok {
				continue
			}
			segs := strings.Split(raw, "|")
			for i := range segs {
				segs[i] = strings.TrimSpace(segs[i])
			}
			dir := strings.TrimPrefix(suffix, ":")
			p.Overrides = append(p.Overrides, ModalOverride{
				Mode: mk.mode, Directional: dir, Segments: segs, Key: key,
			})
		}
	}

	return p, nil
}
