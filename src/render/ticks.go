package render

import (
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
)

// NiceAxisBounds pads [min,max] by 5% and rounds outwards to the span's order of magnitude.
func NiceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	pad := span * 0.05
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// BuildNumericTicks generates about n tick positions covering [min,max] with a 1, 2, 2.5, 5
// times 10^k step. The first and last positions enclose the input range.
func BuildNumericTicks(min, max float64, n int) []float64 {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span/step) + 1
		if diff := math.Abs(count - float64(n)); diff < bestScore {
			bestScore = diff
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	var out []float64
	for i := 0; ; i++ {
		v := round6(start + float64(i)*bestStep)
		if v > end+bestStep*0.5 {
			break
		}
		out = append(out, v)
	}
	if len(out) < 2 {
		out = []float64{min, max}
	}
	return out
}

// FormatNumericTick gives a compact label: integers from 100 up, fewer decimals for larger values.
func FormatNumericTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case av >= 1:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case av >= 0.01:
		return strconv.FormatFloat(v, 'f', 3, 64)
	default:
		return strconv.FormatFloat(v, 'f', 4, 64)
	}
}

func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }

// axisTicks maps tick positions to labelled chart ticks and returns the enclosing range.
func axisTicks(pos []float64) ([]chart.Tick, *chart.ContinuousRange) {
	ticks := make([]chart.Tick, len(pos))
	for i, v := range pos {
		ticks[i] = chart.Tick{Value: v, Label: FormatNumericTick(v)}
	}
	return ticks, &chart.ContinuousRange{Min: pos[0], Max: pos[len(pos)-1]}
}
