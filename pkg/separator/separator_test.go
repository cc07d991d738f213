package separator

import (
	"testing"

	"osm2lanes/pkg/config"
	"osm2lanes/pkg/lanes"
	"osm2lanes/pkg/locale"
)

func TestPlaceInsertsBetweenEveryPairAndEdges(t *testing.T) {
	ls := []lanes.Lane{
		lanes.Travel{Direction: lanes.Backward, Designated: lanes.MotorVehicle},
		lanes.Travel{Direction: lanes.Forward, Designated: lanes.MotorVehicle},
	}
	out := Place(ls, locale.New("US", "", locale.Right), config.Default())

	if len(out) != 5 {
		t.Fatalf("len(out) = %d, want 5 (edge, lane, sep, lane, edge)", len(out))
	}
	if _, ok := out[0].(lanes.Separator); !ok {
		t.Fatalf("out[0] = %T, want leading Separator", out[0])
	}
	if _, ok := out[4].(lanes.Separator); !ok {
		t.Fatalf("out[4] = %T, want trailing Separator", out[4])
	}
	mid, ok := out[2].(lanes.Separator)
	if !ok {
		t.Fatalf("out[2] = %T, want Separator", out[2])
	}
	if mid.Semantic != lanes.SemCentre {
		t.Fatalf("Semantic = %v, want SemCentre", mid.Semantic)
	}
}

func TestCentreSeparatorColorByLocale(t *testing.T) {
	ls := []lanes.Lane{
		lanes.Travel{Direction: lanes.Forward, Designated: lanes.MotorVehicle},
		lanes.Travel{Direction: lanes.Backward, Designated: lanes.MotorVehicle},
	}

	us := Place(ls, locale.New("US", "", locale.Right), config.Default())
	sep := us[2].(lanes.Separator)
	if sep.Markings[0].Color == nil || *sep.Markings[0].Color != lanes.Yellow {
		t.Fatalf("US centre separator color = %v, want Yellow", sep.Markings[0].Color)
	}

	de := Place(ls, locale.New("DE", "", locale.Right), config.Default())
	sep = de[2].(lanes.Separator)
	if sep.Markings[0].Color == nil || *sep.Markings[0].Color != lanes.White {
		t.Fatalf("DE centre separator color = %v, want White", sep.Markings[0].Color)
	}
}

func TestModalSeparatorBetweenBicycleAndMotor(t *testing.T) {
	ls := []lanes.Lane{
		lanes.Travel{Direction: lanes.Forward, Designated: lanes.Bicycle},
		lanes.Travel{Direction: lanes.Forward, Designated: lanes.MotorVehicle},
	}
	out := Place(ls, locale.New("US", "", locale.Right), config.Default())
	sep := out[2].(lanes.Separator)
	if sep.Semantic != lanes.SemModal {
		t.Fatalf("Semantic = %v, want SemModal", sep.Semantic)
	}
}

func TestShoulderSeparatorNextToShoulderLane(t *testing.T) {
	ls := []lanes.Lane{
		lanes.Shoulder{},
		lanes.Travel{Direction: lanes.Forward, Designated: lanes.MotorVehicle},
	}
	out := Place(ls, locale.New("US", "", locale.Right), config.Default())
	sep := out[2].(lanes.Separator)
	if sep.Semantic != lanes.SemShoulder {
		t.Fatalf("Semantic = %v, want SemShoulder", sep.Semantic)
	}
	// Leading edge separator, being adjacent to a Shoulder lane, is also
	// SemShoulder rather than a bare SemEdge marker.
	lead := out[0].(lanes.Separator)
	if lead.Semantic != lanes.SemShoulder {
		t.Fatalf("leading edge Semantic = %v, want SemShoulder", lead.Semantic)
	}
}

func TestPlaceDisabledByConfig(t *testing.T) {
	ls := []lanes.Lane{
		lanes.Travel{Direction: lanes.Forward, Designated: lanes.MotorVehicle},
	}
	cfg := config.Default()
	cfg.IncludeSeparators = false
	out := Place(ls, locale.New("US", "", locale.Right), cfg)
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1 (unchanged)", len(out))
	}
}
