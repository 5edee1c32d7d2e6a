package render

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/jfrummel/cintel-02-data/src/dataset"
	"github.com/jfrummel/cintel-02-data/src/views"
)

// WriteTable prints a table artifact as a bordered text table. maxRows > 0 truncates the body
// and notes how many rows were left out.
func WriteTable(w io.Writer, t *views.Table, maxRows int) {
	fmt.Fprintf(w, "%s (%s, %d rows)\n", t.Header, t.Style, t.RowCount())
	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetHeader(t.Columns)
	rows := t.Rows
	if maxRows > 0 && len(rows) > maxRows {
		rows = rows[:maxRows]
	}
	tw.AppendBulk(rows)
	if len(rows) < t.RowCount() {
		tw.SetCaption(true, fmt.Sprintf("%d more rows not shown", t.RowCount()-len(rows)))
	}
	tw.Render()
}

// WriteHistogram prints per bin counts, one column per species.
func WriteHistogram(w io.Writer, h *views.Histogram) {
	fmt.Fprintf(w, "%s: %d bins, %d values, %d missing\n", h.ChartTitle, h.BinCount(), h.Total(), h.Dropped)
	if h.AltText != "" {
		fmt.Fprintf(w, "alt: %s\n", h.AltText)
	}
	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	header := []string{"bin"}
	for _, s := range h.Series {
		header = append(header, s.Name)
	}
	tw.SetHeader(header)
	for i := 0; i < h.BinCount(); i++ {
		row := []string{fmt.Sprintf("[%s, %s)", FormatNumericTick(h.Edges[i]), FormatNumericTick(h.Edges[i+1]))}
		for _, s := range h.Series {
			row = append(row, strconv.Itoa(int(s.Counts[i])))
		}
		tw.Append(row)
	}
	tw.Render()
}

// WriteSummary prints per species attribute statistics.
func WriteSummary(w io.Writer, sums []dataset.AttributeSummary) {
	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeader([]string{"species", "attribute", "n", "missing", "mean", "median", "sd", "min", "max"})
	for _, s := range sums {
		tw.Append([]string{
			s.Species,
			s.Attribute,
			strconv.Itoa(s.Count),
			strconv.Itoa(s.Missing),
			stat(s.Mean),
			stat(s.Median),
			stat(s.StdDev),
			stat(s.Min),
			stat(s.Max),
		})
	}
	tw.Render()
}

// WriteCounts prints row counts per species in the given order.
func WriteCounts(w io.Writer, order []string, counts map[string]int) {
	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeader([]string{"species", "rows"})
	total := 0
	for _, sp := range order {
		tw.Append([]string{sp, strconv.Itoa(counts[sp])})
		total += counts[sp]
	}
	tw.SetFooter([]string{"total", strconv.Itoa(total)})
	tw.Render()
}

func stat(v float64) string {
	if math.IsNaN(v) {
		return "NA"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
