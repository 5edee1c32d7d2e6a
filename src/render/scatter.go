package render

import (
	"math"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"

	"github.com/jfrummel/cintel-02-data/src/views"
)

func scatterChart(sc *views.Scatter) (*chart.Chart, error) {
	if sc.Points() == 0 {
		return nil, errors.Errorf("scatter %q has no points", sc.ChartTitle)
	}
	p := PlotlyPalette
	ch := baseChart(p, sc.ChartTitle, false, sc.XTitle, sc.YTitle)

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	var entries []legendEntry
	for i, s := range sc.Series {
		col := p.GetSeriesColor(i)
		entries = append(entries, legendEntry{Name: s.Name, Color: col})
		if len(s.X) == 0 {
			continue
		}
		xs, ys := s.X, s.Y
		// go-chart needs two values to draw a series
		if len(xs) == 1 {
			xs, ys = []float64{xs[0], xs[0]}, []float64{ys[0], ys[0]}
		}
		ch.Series = append(ch.Series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(col),
		})
		minX, maxX = math.Min(minX, floats.Min(s.X)), math.Max(maxX, floats.Max(s.X))
		minY, maxY = math.Min(minY, floats.Min(s.Y)), math.Max(maxY, floats.Max(s.Y))
	}

	xticks, xrange := axisTicks(BuildNumericTicks(padded(minX, maxX)))
	yticks, yrange := axisTicks(BuildNumericTicks(padded(minY, maxY)))
	ch.XAxis.Ticks, ch.XAxis.Range = xticks, xrange
	ch.YAxis.Ticks, ch.YAxis.Range = yticks, yrange
	ch.Elements = append(ch.Elements, legend(entries, p))
	return ch, nil
}

// padded returns nice bounds around [lo,hi] plus the tick count wanted for them.
func padded(lo, hi float64) (float64, float64, int) {
	a, b := NiceAxisBounds(lo, hi)
	return a, b, 7
}
