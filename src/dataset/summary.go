package dataset

import (
	"math"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// AttributeSummary holds descriptive statistics of one numeric attribute for one species.
// Count excludes missing values; Missing counts them.
type AttributeSummary struct {
	Species   string
	Attribute string
	Count     int
	Missing   int
	Mean      float64
	Median    float64
	StdDev    float64
	Min       float64
	Max       float64
}

// Summarize computes per species statistics for every numeric attribute, species in
// first-appearance order and attributes in NumericAttributes order.
func Summarize(t *Table) ([]AttributeSummary, error) {
	var out []AttributeSummary
	for _, sp := range t.species {
		for _, attr := range NumericAttributes {
			var data stats.Float64Data
			s := AttributeSummary{Species: sp, Attribute: attr}
			for _, p := range t.rows {
				if p.Species != sp {
					continue
				}
				v, err := p.Measure(attr)
				if err != nil {
					return nil, err
				}
				if math.IsNaN(v) {
					s.Missing++
					continue
				}
				data = append(data, v)
			}
			s.Count = len(data)
			if s.Count == 0 {
				s.Mean, s.Median, s.StdDev, s.Min, s.Max = math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN()
				out = append(out, s)
				continue
			}
			var err error
			if s.Mean, err = stats.Mean(data); err != nil {
				return nil, errors.Wrapf(err, "%s/%s mean", sp, attr)
			}
			if s.Median, err = stats.Median(data); err != nil {
				return nil, errors.Wrapf(err, "%s/%s median", sp, attr)
			}
			if s.Min, err = stats.Min(data); err != nil {
				return nil, errors.Wrapf(err, "%s/%s min", sp, attr)
			}
			if s.Max, err = stats.Max(data); err != nil {
				return nil, errors.Wrapf(err, "%s/%s max", sp, attr)
			}
			// a single observation has no sample deviation
			if s.Count > 1 {
				if s.StdDev, err = stats.StandardDeviationSample(data); err != nil {
					return nil, errors.Wrapf(err, "%s/%s stddev", sp, attr)
				}
			} else {
				s.StdDev = math.NaN()
			}
			out = append(out, s)
		}
	}
	return out, nil
}

// CountBySpecies returns the number of rows per species.
func CountBySpecies(t *Table) map[string]int {
	counts := map[string]int{}
	for _, p := range t.rows {
		counts[p.Species]++
	}
	return counts
}
