package views

import (
	"math"

	"github.com/jfrummel/cintel-02-data/src/dataset"
)

// XYSeries holds the points of one species.
type XYSeries struct {
	Name string
	X    []float64
	Y    []float64
}

// Scatter plots one attribute against another, one series per species.
type Scatter struct {
	ChartTitle string
	XTitle     string
	YTitle     string
	XAttribute string
	YAttribute string
	Series     []XYSeries
	// Dropped counts rows missing either coordinate.
	Dropped int
}

func (s *Scatter) Kind() Kind    { return KindScatter }
func (s *Scatter) Title() string { return s.ChartTitle }

// Points returns the number of plotted points.
func (s *Scatter) Points() int {
	n := 0
	for _, ser := range s.Series {
		n += len(ser.X)
	}
	return n
}

// NewScatter plots bill length against body mass, colored by species.
func NewScatter(ds *dataset.Table) (*Scatter, error) {
	xs, err := ds.Column(dataset.ColBodyMass)
	if err != nil {
		return nil, err
	}
	ys, err := ds.Column(dataset.ColBillLength)
	if err != nil {
		return nil, err
	}
	sc := &Scatter{
		ChartTitle: "Bill Length vs Penguin Mass",
		XTitle:     "Body Mass (g)",
		YTitle:     "Bill Length (mm)",
		XAttribute: dataset.ColBodyMass,
		YAttribute: dataset.ColBillLength,
	}
	index := map[string]int{}
	for _, sp := range ds.Species() {
		index[sp] = len(sc.Series)
		sc.Series = append(sc.Series, XYSeries{Name: sp})
	}
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			sc.Dropped++
			continue
		}
		ser := &sc.Series[index[ds.Row(i).Species]]
		ser.X = append(ser.X, xs[i])
		ser.Y = append(ser.Y, ys[i])
	}
	return sc, nil
}
