package schemes

import (
	"testing"

	"osm2lanes/pkg/diag"
	"osm2lanes/pkg/tags"
)

func TestParseOnewayValues(t *testing.T) {
	cases := []struct {
		raw          string
		wantOneway   bool
		wantReversed bool
	}{
		{"yes", true, false},
		{"true", true, false},
		{"1", true, false},
		{"-1", true, true},
		{"reverse", true, true},
		{"no", false, false},
		{"false", false, false},
		{"0", false, false},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			tg := tags.New(map[string]string{"oneway": tc.raw})
			p, ds := parseOneway(tg)
			for _, d := range ds {
				t.Fatalf("unexpected diagnostic for oneway=%q: %+v", tc.raw, d)
			}
			if p.Oneway != tc.wantOneway || p.Reversed != tc.wantReversed {
				t.Fatalf("oneway=%q => Oneway:%v Reversed:%v, want Oneway:%v Reversed:%v",
					tc.raw, p.Oneway, p.Reversed, tc.wantOneway, tc.wantReversed)
			}
		})
	}
}

func TestParseOnewayUnrecognizedValueWarns(t *testing.T) {
	tg := tags.New(map[string]string{"oneway": "bogus"})
	p, ds := parseOneway(tg)
	if p.Oneway {
		t.Fatal("Oneway = true for an unrecognized value, want false")
	}
	if len(ds) != 1 || ds[0].Code != diag.UnknownValue {
		t.Fatalf("diagnostics = %+v, want a single UnknownValue warning", ds)
	}
	if ds[0].Severity != diag.Warning {
		t.Fatalf("severity = %v, want Warning (unrecognized values never abort)", ds[0].Severity)
	}
}

func TestParseOnewayBicycleExempt(t *testing.T) {
	tg := tags.New(map[string]string{"oneway": "yes", "oneway:bicycle": "no"})
	p, _ := parseOneway(tg)
	if !p.Oneway || !p.BicycleExempt {
		t.Fatalf("p = %+v, want Oneway and BicycleExempt both true", p)
	}
}

func TestParseOnewayAbsent(t *testing.T) {
	tg := tags.New(map[string]string{})
	p, ds := parseOneway(tg)
	if p.Oneway || p.Reversed || p.BicycleExempt {
		t.Fatalf("p = %+v, want zero value when oneway is untagged", p)
	}
	if len(ds) != 0 {
		t.Fatalf("diagnostics = %+v, want none", ds)
	}
}
