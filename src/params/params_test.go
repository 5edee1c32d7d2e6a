package params

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/jfrummel/cintel-02-data/src/dataset"
)

func TestDefaults(t *testing.T) {
	d := Defaults()
	if d.Attribute != dataset.ColBillLength || d.PlotlyBins != 25 || d.SeabornBins != 50 {
		t.Fatalf("unexpected defaults: %+v", d)
	}
	if len(d.Species) != 1 || d.Species[0] != "Adelie" {
		t.Fatalf("default species=%v", d.Species)
	}
}

func TestSet_ReportsChange(t *testing.T) {
	s := Defaults()
	changed, err := s.Set(PlotlyBinCount, 25)
	if err != nil || changed {
		t.Fatalf("same value: changed=%v err=%v", changed, err)
	}
	changed, err = s.Set(PlotlyBinCount, 40)
	if err != nil || !changed || s.PlotlyBins != 40 {
		t.Fatalf("new value: changed=%v err=%v state=%+v", changed, err, s)
	}
	changed, err = s.Set(SelectedAttribute, dataset.ColBodyMass)
	if err != nil || !changed {
		t.Fatalf("attribute: changed=%v err=%v", changed, err)
	}
}

func TestSet_PlotlyBinsUnvalidated(t *testing.T) {
	s := Defaults()
	for _, n := range []int{0, -5, 1_000_000} {
		if _, err := s.Set(PlotlyBinCount, n); err != nil {
			t.Fatalf("plotly bins %d rejected: %v", n, err)
		}
		if s.PlotlyBins != n {
			t.Fatalf("plotly bins=%d want %d", s.PlotlyBins, n)
		}
	}
}

func TestSet_WidgetConstraints(t *testing.T) {
	cases := []struct {
		id   ID
		v    interface{}
		want error
	}{
		{SelectedAttribute, "species", ErrNotAChoice},
		{SelectedAttribute, "wing_span_mm", ErrNotAChoice},
		{SelectedAttribute, 3, ErrWrongType},
		{SeabornBinCount, 0, ErrOutOfRange},
		{SeabornBinCount, 101, ErrOutOfRange},
		{SeabornBinCount, "50", ErrWrongType},
		{SelectedSpecies, []string{"Emperor"}, ErrNotAChoice},
		{SelectedSpecies, "Adelie", ErrWrongType},
		{PlotlyBinCount, 2.5, ErrWrongType},
		{ID("colour"), 1, ErrUnknownParam},
	}
	for _, c := range cases {
		s := Defaults()
		before := s.Clone()
		_, err := s.Set(c.id, c.v)
		if errors.Cause(err) != c.want {
			t.Fatalf("%s=%v: err=%v want %v", c.id, c.v, err, c.want)
		}
		if !s.Equal(before) {
			t.Fatalf("%s=%v: state changed on error: %+v", c.id, c.v, s)
		}
	}
}

func TestSet_SeabornFullRange(t *testing.T) {
	s := Defaults()
	for n := SeabornBinsMin; n <= SeabornBinsMax; n++ {
		if _, err := s.Set(SeabornBinCount, n); err != nil {
			t.Fatalf("seaborn bins %d: %v", n, err)
		}
	}
}

func TestSet_SpeciesNormalized(t *testing.T) {
	s := Defaults()
	changed, err := s.Set(SelectedSpecies, []string{"Chinstrap", "Adelie", "Chinstrap"})
	if err != nil || !changed {
		t.Fatalf("changed=%v err=%v", changed, err)
	}
	if len(s.Species) != 2 || s.Species[0] != "Adelie" || s.Species[1] != "Chinstrap" {
		t.Fatalf("species=%v", s.Species)
	}
	changed, _ = s.Set(SelectedSpecies, []string{"Chinstrap", "Adelie"})
	if changed {
		t.Fatalf("reordered selection should not count as a change")
	}
	changed, err = s.Set(SelectedSpecies, []string{})
	if err != nil || !changed || len(s.Species) != 0 {
		t.Fatalf("empty selection: changed=%v err=%v species=%v", changed, err, s.Species)
	}
}

func TestGet_CloneIsolation(t *testing.T) {
	s := Defaults()
	v, err := s.Get(SelectedSpecies)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	v.([]string)[0] = "Gentoo"
	if s.Species[0] != "Adelie" {
		t.Fatalf("Get leaked internal slice")
	}
	c := s.Clone()
	c.Species[0] = "Gentoo"
	if s.Species[0] != "Adelie" {
		t.Fatalf("Clone leaked internal slice")
	}
	for _, id := range All {
		if _, err := s.Get(id); err != nil {
			t.Fatalf("get %s: %v", id, err)
		}
	}
}
