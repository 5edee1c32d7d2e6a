package views

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/jfrummel/cintel-02-data/src/dataset"
)

// MaxBins caps how many bins a histogram may end up with.
const MaxBins = 10000

var (
	ErrInvalidBins = errors.New("invalid bin count")
	ErrTooManyBins = errors.New("too many bins")
	ErrNoData      = errors.New("no values to plot")
)

// HistStyle selects how species groups are drawn.
type HistStyle string

const (
	// HistStacked stacks the species bars on top of each other.
	HistStacked HistStyle = "stacked"
	// HistStep draws one outline per species, overlapping.
	HistStep HistStyle = "step"
)

// Series holds per bin counts for one species.
type Series struct {
	Name   string
	Counts []float64
}

// Histogram is a binned count of one attribute grouped by species.
// Edges has one more entry than each Counts slice; bin i covers [Edges[i], Edges[i+1]).
type Histogram struct {
	ChartTitle    string
	TitleCentered bool
	XTitle        string
	YTitle        string
	AltText       string
	Attribute     string
	Style         HistStyle
	Edges         []float64
	Series        []Series
	// Dropped counts rows without a value for Attribute.
	Dropped int
}

func (h *Histogram) Kind() Kind    { return KindHistogram }
func (h *Histogram) Title() string { return h.ChartTitle }

// BinCount returns the number of bins.
func (h *Histogram) BinCount() int {
	if len(h.Edges) < 2 {
		return 0
	}
	return len(h.Edges) - 1
}

// Total returns the number of counted observations over all series.
func (h *Histogram) Total() int {
	var n float64
	for _, s := range h.Series {
		n += floats.Sum(s.Counts)
	}
	return int(n)
}

// NewPlotlyHistogram bins body mass with at most nbins bins of a rounded width, stacked by
// species. nbins == 0 picks a count from the number of observations. A count that would
// still give more than MaxBins bins after rounding fails with ErrTooManyBins.
func NewPlotlyHistogram(ds *dataset.Table, nbins int) (*Histogram, error) {
	if nbins < 0 {
		return nil, errors.Wrapf(ErrInvalidBins, "nbins=%d", nbins)
	}
	groups, dropped, err := groupBySpecies(ds, dataset.ColBodyMass)
	if err != nil {
		return nil, err
	}
	lo, hi, n := bounds(groups)
	if n == 0 {
		return nil, errors.Wrap(ErrNoData, dataset.ColBodyMass)
	}
	if nbins == 0 {
		nbins = sturges(n)
	}
	edges, err := roundedEdges(lo, hi, nbins)
	if err != nil {
		return nil, err
	}
	h := &Histogram{
		ChartTitle:    "Penguin Mass",
		TitleCentered: true,
		XTitle:        "Body Mass (g)",
		YTitle:        "Count",
		Attribute:     dataset.ColBodyMass,
		Style:         HistStacked,
		Edges:         edges,
		Dropped:       dropped,
	}
	h.Series = countSeries(ds.Species(), groups, dividers(edges, hi))
	return h, nil
}

// NewSeabornHistogram bins body mass into exactly bins equal-width bins spanning the observed
// range, one step outline per species.
func NewSeabornHistogram(ds *dataset.Table, bins int) (*Histogram, error) {
	if bins < 1 {
		return nil, errors.Wrapf(ErrInvalidBins, "bins=%d", bins)
	}
	if bins > MaxBins {
		return nil, errors.Wrapf(ErrTooManyBins, "bins=%d", bins)
	}
	groups, dropped, err := groupBySpecies(ds, dataset.ColBodyMass)
	if err != nil {
		return nil, err
	}
	lo, hi, n := bounds(groups)
	if n == 0 {
		return nil, errors.Wrap(ErrNoData, dataset.ColBodyMass)
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	edges := floats.Span(make([]float64, bins+1), lo, hi)
	edges[bins] = hi
	h := &Histogram{
		ChartTitle:    "Palmer Penguins",
		TitleCentered: true,
		XTitle:        "Mass (g)",
		YTitle:        "Count",
		AltText:       "A Seaborn histogram on penguin body mass in grams.",
		Attribute:     dataset.ColBodyMass,
		Style:         HistStep,
		Edges:         edges,
		Dropped:       dropped,
	}
	h.Series = countSeries(ds.Species(), groups, dividers(edges, hi))
	return h, nil
}

// groupBySpecies collects sorted non-missing values of attr per species.
func groupBySpecies(ds *dataset.Table, attr string) (map[string][]float64, int, error) {
	col, err := ds.Column(attr)
	if err != nil {
		return nil, 0, err
	}
	groups := map[string][]float64{}
	dropped := 0
	for i, v := range col {
		if math.IsNaN(v) {
			dropped++
			continue
		}
		sp := ds.Row(i).Species
		groups[sp] = append(groups[sp], v)
	}
	for _, g := range groups {
		sort.Float64s(g)
	}
	return groups, dropped, nil
}

func bounds(groups map[string][]float64) (lo, hi float64, n int) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		lo = math.Min(lo, g[0])
		hi = math.Max(hi, g[len(g)-1])
		n += len(g)
	}
	return lo, hi, n
}

// dividers returns edges whose last entry lies strictly above hi, as stat.Histogram
// treats bins as half-open.
func dividers(edges []float64, hi float64) []float64 {
	d := append([]float64(nil), edges...)
	if last := len(d) - 1; d[last] <= hi {
		d[last] = math.Nextafter(hi, math.Inf(1))
	}
	return d
}

func countSeries(order []string, groups map[string][]float64, div []float64) []Series {
	out := make([]Series, 0, len(order))
	for _, sp := range order {
		counts := make([]float64, len(div)-1)
		if g := groups[sp]; len(g) > 0 {
			stat.Histogram(counts, div, g, nil)
		}
		out = append(out, Series{Name: sp, Counts: counts})
	}
	return out
}

func sturges(n int) int {
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

var stepMantissas = []float64{1, 2, 2.5, 5}

// niceStepAtLeast returns the smallest m*10^k (m in 1, 2, 2.5, 5) not below x.
func niceStepAtLeast(x float64) float64 {
	exp := math.Floor(math.Log10(x))
	for e := exp; e <= exp+1; e++ {
		p := math.Pow(10, e)
		for _, m := range stepMantissas {
			if v := m * p; v >= x*(1-1e-12) {
				return v
			}
		}
	}
	return 10 * math.Pow(10, exp+1)
}

// roundedEdges picks the narrowest rounded bin width that covers [lo, hi] in at most nbins
// bins, with edges aligned to multiples of the width.
func roundedEdges(lo, hi float64, nbins int) ([]float64, error) {
	if lo == hi {
		return []float64{lo - 0.5, hi + 0.5}, nil
	}
	size := niceStepAtLeast((hi - lo) / float64(nbins))
	var start float64
	var count int
	for i := 0; i < 8; i++ {
		start = math.Floor(lo/size) * size
		if start > lo {
			start -= size
		}
		bins := math.Floor((hi-start)/size) + 1
		if bins > MaxBins {
			return nil, errors.Wrapf(ErrTooManyBins, "nbins=%d gives %.0f bins", nbins, bins)
		}
		count = int(bins)
		if count <= nbins {
			break
		}
		size = niceStepAtLeast(size * (1 + 1e-9))
	}
	return floats.Span(make([]float64, count+1), start, start+float64(count)*size), nil
}
