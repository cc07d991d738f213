package lanes

import (
	"encoding/json"
	"testing"
)

func TestTravelRoundTrip(t *testing.T) {
	width := 3.5
	tr := Travel{
		Direction: Backward, Designated: MotorVehicle, WidthM: &width,
		MaxSpeed: &Speed{Unit: "mph", Value: 25},
	}
	b, err := json.Marshal(tr)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	got, err := UnmarshalLane(b)
	if err != nil {
		t.Fatalf("UnmarshalLane: %v", err)
	}
	gt, ok := got.(Travel)
	if !ok {
		t.Fatalf("got %T, want Travel", got)
	}
	if gt.Direction != Backward || gt.Designated != MotorVehicle || *gt.WidthM != 3.5 {
		t.Fatalf("round-tripped travel lane mismatch: %+v", gt)
	}
	if gt.MaxSpeed == nil || gt.MaxSpeed.Unit != "mph" || gt.MaxSpeed.Value != 25 {
		t.Fatalf("max_speed mismatch: %+v", gt.MaxSpeed)
	}
}

func TestSeparatorMarkingsRoundTrip(t *testing.T) {
	gap := 0.1
	white := White
	sep := Separator{
		Semantic: SemCentre,
		Markings: []Marking{
			{Style: SolidLine, Color: &white},
			{Style: NoFill, WidthM: &gap},
			{Style: SolidLine, Color: &white},
		},
	}
	b, err := json.Marshal(sep)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := UnmarshalLane(b)
	if err != nil {
		t.Fatalf("UnmarshalLane: %v", err)
	}
	gs := got.(Separator)
	if len(gs.Markings) != 3 || gs.Markings[1].Style != NoFill {
		t.Fatalf("markings mismatch: %+v", gs.Markings)
	}
}

func TestRoadRoundTrip(t *testing.T) {
	name := "Main St"
	road := Road{
		Name:         &name,
		HighwayClass: Residential,
		Lanes: []Lane{
			Shoulder{},
			Travel{Direction: Forward, Designated: MotorVehicle},
			Shoulder{},
		},
	}
	b, err := json.Marshal(road)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got Road
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(got.Lanes) != 3 {
		t.Fatalf("Lanes len = %d, want 3", len(got.Lanes))
	}
	if _, ok := got.Lanes[1].(Travel); !ok {
		t.Fatalf("Lanes[1] = %T, want Travel", got.Lanes[1])
	}
}

func TestUnrecognizedLaneType(t *testing.T) {
	_, err := UnmarshalLane([]byte(`{"type":"bogus"}`))
	if err == nil {
		t.Fatal("expected error for unrecognized lane type")
	}
}
