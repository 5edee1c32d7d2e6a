// Package params models the user controllable inputs of the dashboard.
//
// Set enforces exactly what the sidebar widgets enforce by construction (an enumerated
// attribute choice, a 1..100 slider, a fixed checkbox set). The plotly bin count comes from a
// free numeric entry and is passed through unvalidated.
package params

import (
	"github.com/pkg/errors"

	"github.com/jfrummel/cintel-02-data/src/dataset"
)

// ID names one input.
type ID string

const (
	SelectedAttribute ID = "selected_attribute"
	PlotlyBinCount    ID = "plotly_bin_count"
	SeabornBinCount   ID = "seaborn_bin_count"
	SelectedSpecies   ID = "selected_species_list"
)

// All lists every input in sidebar order.
var All = []ID{SelectedAttribute, PlotlyBinCount, SeabornBinCount, SelectedSpecies}

const (
	DefaultPlotlyBins  = 25
	DefaultSeabornBins = 50
	SeabornBinsMin     = 1
	SeabornBinsMax     = 100
)

var (
	ErrUnknownParam = errors.New("unknown parameter")
	ErrWrongType    = errors.New("wrong value type")
	ErrNotAChoice   = errors.New("value is not one of the offered choices")
	ErrOutOfRange   = errors.New("value outside widget range")
)

// State is a snapshot of all inputs.
type State struct {
	Attribute   string
	PlotlyBins  int
	SeabornBins int
	Species     []string
}

// Defaults mirrors the initial widget values.
func Defaults() State {
	return State{
		Attribute:   dataset.NumericAttributes[0],
		PlotlyBins:  DefaultPlotlyBins,
		SeabornBins: DefaultSeabornBins,
		Species:     []string{dataset.SpeciesChoices[0]},
	}
}

// Clone returns a deep copy.
func (s State) Clone() State {
	c := s
	c.Species = append([]string(nil), s.Species...)
	return c
}

// Equal reports whether two snapshots hold the same values.
func (s State) Equal(o State) bool {
	if s.Attribute != o.Attribute || s.PlotlyBins != o.PlotlyBins || s.SeabornBins != o.SeabornBins {
		return false
	}
	return sameStrings(s.Species, o.Species)
}

// Get returns the current value of one input. Species is returned as a copy.
func (s State) Get(id ID) (interface{}, error) {
	switch id {
	case SelectedAttribute:
		return s.Attribute, nil
	case PlotlyBinCount:
		return s.PlotlyBins, nil
	case SeabornBinCount:
		return s.SeabornBins, nil
	case SelectedSpecies:
		return append([]string(nil), s.Species...), nil
	}
	return nil, errors.Wrapf(ErrUnknownParam, "%q", id)
}

// Set assigns one input and reports whether its value changed. On error the state is untouched.
func (s *State) Set(id ID, v interface{}) (bool, error) {
	switch id {
	case SelectedAttribute:
		a, ok := v.(string)
		if !ok {
			return false, errors.Wrapf(ErrWrongType, "%s wants string, got %T", id, v)
		}
		if !contains(dataset.NumericAttributes, a) {
			return false, errors.Wrapf(ErrNotAChoice, "%s=%q", id, a)
		}
		changed := s.Attribute != a
		s.Attribute = a
		return changed, nil
	case PlotlyBinCount:
		n, ok := v.(int)
		if !ok {
			return false, errors.Wrapf(ErrWrongType, "%s wants int, got %T", id, v)
		}
		changed := s.PlotlyBins != n
		s.PlotlyBins = n
		return changed, nil
	case SeabornBinCount:
		n, ok := v.(int)
		if !ok {
			return false, errors.Wrapf(ErrWrongType, "%s wants int, got %T", id, v)
		}
		if n < SeabornBinsMin || n > SeabornBinsMax {
			return false, errors.Wrapf(ErrOutOfRange, "%s=%d not in [%d,%d]", id, n, SeabornBinsMin, SeabornBinsMax)
		}
		changed := s.SeabornBins != n
		s.SeabornBins = n
		return changed, nil
	case SelectedSpecies:
		list, ok := v.([]string)
		if !ok {
			return false, errors.Wrapf(ErrWrongType, "%s wants []string, got %T", id, v)
		}
		norm, err := NormalizeSpecies(list)
		if err != nil {
			return false, err
		}
		changed := !sameStrings(s.Species, norm)
		s.Species = norm
		return changed, nil
	}
	return false, errors.Wrapf(ErrUnknownParam, "%q", id)
}

// NormalizeSpecies checks a selection against the offered choices and returns it in choice
// order without duplicates. An empty selection is valid.
func NormalizeSpecies(list []string) ([]string, error) {
	picked := map[string]bool{}
	for _, sp := range list {
		if !contains(dataset.SpeciesChoices, sp) {
			return nil, errors.Wrapf(ErrNotAChoice, "%s=%q", SelectedSpecies, sp)
		}
		picked[sp] = true
	}
	out := []string{}
	for _, sp := range dataset.SpeciesChoices {
		if picked[sp] {
			out = append(out, sp)
		}
	}
	return out, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
