package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"osm2lanes/pkg/lanes"
)

func runDiagram(args []string) error {
	fs := flag.NewFlagSet("diagram", flag.ExitOnError)
	in := fs.String("in", "-", "Input Road JSON file (- for stdin)")
	out := fs.String("out", "-", "Output file (- for stdout)")
	fs.Parse(args)

	raw, err := readInput(*in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	var road lanes.Road
	if err := json.Unmarshal(raw, &road); err != nil {
		return fmt.Errorf("decode road JSON: %w", err)
	}

	return writeOutput(*out, []byte(renderDiagram(road)))
}

// renderDiagram draws a Road's lane list, left edge to right edge, as one
// line of bracketed cells joined by '|'.
func renderDiagram(road lanes.Road) string {
	cells := make([]string, len(road.Lanes))
	for i, l := range road.Lanes {
		cells[i] = laneCell(l)
	}
	header := fmt.Sprintf("%s (%d lanes)", road.HighwayClass, len(road.Lanes))
	return header + "\n" + strings.Join(cells, "|")
}

func laneCell(l lanes.Lane) string {
	switch v := l.(type) {
	case lanes.Travel:
		return fmt.Sprintf("[%s %s]", arrow(v.Direction), v.Designated)
	case lanes.Parking:
		return fmt.Sprintf("[P %s %s]", arrow(v.Direction), v.Orientation)
	case lanes.Shoulder:
		return "[shoulder]"
	case lanes.Construction:
		return "[construction]"
	case lanes.Separator:
		return separatorCell(v)
	default:
		return "[?]"
	}
}

func arrow(d lanes.Direction) string {
	switch d {
	case lanes.Forward:
		return "->"
	case lanes.Backward:
		return "<-"
	case lanes.Both:
		return "<->"
	default:
		return ""
	}
}

func separatorCell(s lanes.Separator) string {
	switch s.Semantic {
	case lanes.SemCentre:
		return "||"
	case lanes.SemModal:
		return ":"
	case lanes.SemShoulder:
		return "."
	default:
		return "!"
	}
}
