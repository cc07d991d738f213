package lanes

import (
	"encoding/json"
	"fmt"
)

// laneType is the JSON discriminator written/read as the "type" field.
type laneType string

const (
	typeTravel       laneType = "travel"
	typeParking      laneType = "parking"
	typeShoulder     laneType = "shoulder"
	typeSeparator    laneType = "separator"
	typeConstruction laneType = "construction"
)

// travelJSON mirrors Travel's wire shape, matching §6's field names
// exactly ("max_speed", "turn_markings").
type travelJSON struct {
	Type         laneType    `json:"type"`
	Direction    Direction   `json:"direction"`
	Designated   Designated  `json:"designated"`
	WidthM       *float64    `json:"width,omitempty"`
	MaxSpeed     *Speed      `json:"max_speed,omitempty"`
	Access       *Access     `json:"access,omitempty"`
	TurnMarkings []TurnMark  `json:"turn_markings,omitempty"`
}

type parkingJSON struct {
	Type        laneType           `json:"type"`
	Direction   Direction          `json:"direction"`
	Designated  Designated         `json:"designated"`
	Orientation ParkingOrientation `json:"orientation"`
	WidthM      *float64           `json:"width,omitempty"`
}

type shoulderJSON struct {
	Type   laneType `json:"type"`
	WidthM *float64 `json:"width,omitempty"`
}

type separatorJSON struct {
	Type     laneType          `json:"type"`
	Semantic SeparatorSemantic `json:"semantic"`
	Markings []Marking         `json:"markings"`
}

type constructionJSON struct {
	Type   laneType `json:"type"`
	WidthM *float64 `json:"width,omitempty"`
}

// MarshalJSON implements json.Marshaler for each variant.
func (t Travel) MarshalJSON() ([]byte, error) {
	return json.Marshal(travelJSON{
		Type: typeTravel, Direction: t.Direction, Designated: t.Designated,
		WidthM: t.WidthM, MaxSpeed: t.MaxSpeed, Access: t.Access,
		TurnMarkings: t.TurnMarkings,
	})
}

func (p Parking) MarshalJSON() ([]byte, error) {
	return json.Marshal(parkingJSON{
		Type: typeParking, Direction: p.Direction, Designated: p.Designated,
		Orientation: p.Orientation, WidthM: p.WidthM,
	})
}

func (s Shoulder) MarshalJSON() ([]byte, error) {
	return json.Marshal(shoulderJSON{Type: typeShoulder, WidthM: s.WidthM})
}

func (s Separator) MarshalJSON() ([]byte, error) {
	markings := s.Markings
	if markings == nil {
		markings = []Marking{}
	}
	return json.Marshal(separatorJSON{Type: typeSeparator, Semantic: s.Semantic, Markings: markings})
}

func (c Construction) MarshalJSON() ([]byte, error) {
	return json.Marshal(constructionJSON{Type: typeConstruction, WidthM: c.WidthM})
}

// laneEnvelope sniffs just the discriminator before decoding the full
// variant payload.
type laneEnvelope struct {
	Type laneType `json:"type"`
}

// UnmarshalLane decodes a single JSON lane object into its concrete
// variant, returned as the Lane interface.
func UnmarshalLane(data []byte) (Lane, error) {
	var env laneEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("lane envelope: %w", err)
	}
	switch env.Type {
	case typeTravel:
		var v travelJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("travel lane: %w", err)
		}
		return Travel{
			Direction: v.Direction, Designated: v.Designated, WidthM: v.WidthM,
			MaxSpeed: v.MaxSpeed, Access: v.Access, TurnMarkings: v.TurnMarkings,
		}, nil
	case typeParking:
		var v parkingJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("parking lane: %w", err)
		}
		return Parking{Direction: v.Direction, Designated: v.Designated, Orientation: v.Orientation, WidthM: v.WidthM}, nil
	case typeShoulder:
		var v shoulderJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("shoulder lane: %w", err)
		}
		return Shoulder{WidthM: v.WidthM}, nil
	case typeSeparator:
		var v separatorJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("separator lane: %w", err)
		}
		return Separator{Semantic: v.Semantic, Markings: v.Markings}, nil
	case typeConstruction:
		var v constructionJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("construction lane: %w", err)
		}
		return Construction{WidthM: v.WidthM}, nil
	default:
		return nil, fmt.Errorf("unrecognized lane type %q", env.Type)
	}
}

// roadJSON mirrors Road's wire shape; Lanes is handled manually since Lane
// is an interface.
type roadJSON struct {
	Name         *string           `json:"name,omitempty"`
	HighwayClass HighwayClass      `json:"highway_class"`
	Lanes        []json.RawMessage `json:"lanes"`
	Lit          *bool             `json:"lit,omitempty"`
	OtherAttrs   map[string]string `json:"other_attrs,omitempty"`
}

// MarshalJSON implements json.Marshaler for Road.
func (r Road) MarshalJSON() ([]byte, error) {
	raw := roadJSON{
		Name: r.Name, HighwayClass: r.HighwayClass, Lit: r.Lit, OtherAttrs: r.OtherAttrs,
	}
	for _, l := range r.Lanes {
		b, err := json.Marshal(l)
		if err != nil {
			return nil, fmt.Errorf("marshal lane: %w", err)
		}
		raw.Lanes = append(raw.Lanes, b)
	}
	return json.Marshal(raw)
}

// UnmarshalJSON implements json.Unmarshaler for Road.
func (r *Road) UnmarshalJSON(data []byte) error {
	var raw roadJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("road envelope: %w", err)
	}
	r.Name = raw.Name
	r.HighwayClass = raw.HighwayClass
	r.Lit = raw.Lit
	r.OtherAttrs = raw.OtherAttrs
	r.Lanes = make([]Lane, 0, len(raw.Lanes))
	for i, rl := range raw.Lanes {
		l, err := UnmarshalLane(rl)
		if err != nil {
			return fmt.Errorf("lane %d: %w", i, err)
		}
		r.Lanes = append(r.Lanes, l)
	}
	return nil
}
