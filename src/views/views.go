// Package views computes the dashboard's derived artifacts.
//
// Each view is a pure function of the dataset and a parameter snapshot: it never writes to
// the table, never reads another view, and returns an equivalent artifact for equal inputs.
// Turning an artifact into pixels or text is the job of package render.
package views

import (
	"github.com/jfrummel/cintel-02-data/src/dataset"
	"github.com/jfrummel/cintel-02-data/src/params"
)

// OutputID names one rendered output on the page.
type OutputID string

const (
	PenguinsTable     OutputID = "penguins_table"
	PenguinsGrid      OutputID = "penguins_grid"
	PlotlyHistogram   OutputID = "plotly_histogram"
	SeabornHistogram  OutputID = "seaborn_histogram"
	PlotlyScatterplot OutputID = "plotly_scatterplot"
)

// Kind classifies artifacts.
type Kind string

const (
	KindTable     Kind = "table"
	KindHistogram Kind = "histogram"
	KindScatter   Kind = "scatter"
)

// Artifact is a renderable view model.
type Artifact interface {
	Kind() Kind
	Title() string
}

// ComputeFunc derives an artifact from a parameter snapshot.
type ComputeFunc func(params.State) (Artifact, error)

// Definition declares one output together with the inputs it reads.
type Definition struct {
	ID      OutputID
	Header  string
	Deps    []params.ID
	Compute ComputeFunc
}

// Catalog returns the five page outputs bound to the given table, in page order.
//
// No output reads selected_attribute or selected_species_list: both widgets exist on the
// page but nothing consumes them yet.
func Catalog(t *dataset.Table) []Definition {
	return []Definition{
		{
			ID:     PenguinsTable,
			Header: "Data Table",
			Compute: func(params.State) (Artifact, error) {
				return NewDataTable(t), nil
			},
		},
		{
			ID:     PenguinsGrid,
			Header: "Data Grid",
			Compute: func(params.State) (Artifact, error) {
				return NewDataGrid(t), nil
			},
		},
		{
			ID:     PlotlyHistogram,
			Header: "Plotly Histogram",
			Deps:   []params.ID{params.PlotlyBinCount},
			Compute: func(s params.State) (Artifact, error) {
				h, err := NewPlotlyHistogram(t, s.PlotlyBins)
				if err != nil {
					return nil, err
				}
				return h, nil
			},
		},
		{
			ID:     SeabornHistogram,
			Header: "Seaborn Histogram",
			Deps:   []params.ID{params.SeabornBinCount},
			Compute: func(s params.State) (Artifact, error) {
				h, err := NewSeabornHistogram(t, s.SeabornBins)
				if err != nil {
					return nil, err
				}
				return h, nil
			},
		},
		{
			ID:     PlotlyScatterplot,
			Header: "Plotly Scatterplot: Species",
			Compute: func(params.State) (Artifact, error) {
				sc, err := NewScatter(t)
				if err != nil {
					return nil, err
				}
				return sc, nil
			},
		},
	}
}
