package schemes

import (
	"strings"

	"osm2lanes/pkg/tags"
)

// parseLit reads `lit`. Returns nil when absent or unrecognized (unknown).
func parseLit(t *tags.Tags) *bool {
	raw, ok := t.GetConsume("lit")
	if !ok {
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes":
		v := true
		return &v
	case "no":
		v := false
		return &v
	default:
		return nil
	}
}
