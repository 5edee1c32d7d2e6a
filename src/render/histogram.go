package render

import (
	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"

	"github.com/jfrummel/cintel-02-data/src/views"
)

func histogramChart(h *views.Histogram) (*chart.Chart, error) {
	if h.BinCount() == 0 {
		return nil, errors.Errorf("histogram %q has no bins", h.ChartTitle)
	}
	p := SeabornPalette
	if h.Style == views.HistStacked {
		p = PlotlyPalette
	}
	ch := baseChart(p, h.ChartTitle, h.TitleCentered, h.XTitle, h.YTitle)

	var series []chart.Series
	var top float64
	switch h.Style {
	case views.HistStacked:
		series, top = stackedSeries(h, p)
	default:
		series, top = stepSeries(h, p)
	}
	entries := make([]legendEntry, len(h.Series))
	for i, s := range h.Series {
		entries[i] = legendEntry{Name: s.Name, Color: p.GetSeriesColor(i)}
	}
	if top <= 0 {
		top = 1
	}
	ch.Series = series

	xticks, xrange := axisTicks(BuildNumericTicks(h.Edges[0], h.Edges[len(h.Edges)-1], 8))
	yticks, yrange := axisTicks(BuildNumericTicks(0, top, 6))
	ch.XAxis.Ticks, ch.XAxis.Range = xticks, xrange
	ch.YAxis.Ticks, ch.YAxis.Range = yticks, yrange
	ch.Elements = append(ch.Elements, legend(entries, p))
	return ch, nil
}

// stepPath traces the outline of per bin heights as a closed step polygon on the x axis.
func stepPath(edges, heights []float64) ([]float64, []float64) {
	xs := make([]float64, 0, 2*len(heights)+2)
	ys := make([]float64, 0, 2*len(heights)+2)
	xs, ys = append(xs, edges[0]), append(ys, 0)
	for i, v := range heights {
		xs = append(xs, edges[i], edges[i+1])
		ys = append(ys, v, v)
	}
	xs, ys = append(xs, edges[len(edges)-1]), append(ys, 0)
	return xs, ys
}

// stackedSeries draws cumulative counts as filled steps. The tallest layer goes first so each
// species paints its own band on top of the previous ones.
func stackedSeries(h *views.Histogram, p Palette) ([]chart.Series, float64) {
	cum := make([][]float64, len(h.Series))
	running := make([]float64, h.BinCount())
	for i, s := range h.Series {
		floats.Add(running, s.Counts)
		cum[i] = append([]float64(nil), running...)
	}
	var out []chart.Series
	for i := len(h.Series) - 1; i >= 0; i-- {
		col := p.GetSeriesColor(i)
		xs, ys := stepPath(h.Edges, cum[i])
		out = append(out, chart.ContinuousSeries{
			Name:    h.Series[i].Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: col,
				StrokeWidth: 1,
				FillColor:   col,
			},
		})
	}
	return out, floats.Max(running)
}

// stepSeries draws one translucent outline per species.
func stepSeries(h *views.Histogram, p Palette) ([]chart.Series, float64) {
	var out []chart.Series
	var top float64
	for i, s := range h.Series {
		col := p.GetSeriesColor(i)
		xs, ys := stepPath(h.Edges, s.Counts)
		out = append(out, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: col,
				StrokeWidth: 1.5,
				FillColor:   col.WithAlpha(64),
			},
		})
		if m := floats.Max(s.Counts); m > top {
			top = m
		}
	}
	return out, top
}
