package main

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/jfrummel/cintel-02-data/cmd/penguinboard/uihelpers"
	"github.com/jfrummel/cintel-02-data/src/dataset"
	"github.com/jfrummel/cintel-02-data/src/logging"
	"github.com/jfrummel/cintel-02-data/src/reactive"
	"github.com/jfrummel/cintel-02-data/src/render"
	"github.com/jfrummel/cintel-02-data/src/views"
)

// RunScreenshotsMode writes every output under outDir without opening a window: charts as
// <id>.png sized as their card would be at winW, tables as <id>.txt.
func RunScreenshotsMode(comp *reactive.Composer, outDir string, winW float32) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrap(err, "create out dir")
	}
	for _, id := range comp.Outputs() {
		r, _ := comp.Result(id)
		if t, ok := r.Artifact.(*views.Table); ok {
			var buf bytes.Buffer
			render.WriteTable(&buf, t, 0)
			if err := writeFile(filepath.Join(outDir, string(id)+".txt"), buf.Bytes()); err != nil {
				return err
			}
			continue
		}
		w, h := uihelpers.ComputeCardChartSize(winW, rowWidth(id))
		var buf bytes.Buffer
		if err := png.Encode(&buf, chartImage(r, w, h)); err != nil {
			return errors.Wrapf(err, "encode %s", id)
		}
		if err := writeFile(filepath.Join(outDir, string(id)+".png"), buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, b []byte) error {
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	logging.Debugf("wrote %s (%d bytes)", path, len(b))
	return nil
}

// dumpTables prints every output as text followed by a per species summary of the dataset.
func dumpTables(out io.Writer, ds *dataset.Table, comp *reactive.Composer) error {
	for _, id := range comp.Outputs() {
		r, _ := comp.Result(id)
		if r.Err != nil {
			fmt.Fprintf(out, "%s: error: %v\n\n", comp.Header(id), r.Err)
			continue
		}
		switch a := r.Artifact.(type) {
		case *views.Table:
			render.WriteTable(out, a, 10)
		case *views.Histogram:
			render.WriteHistogram(out, a)
		case *views.Scatter:
			fmt.Fprintf(out, "%s: %d points, %d missing\n", a.ChartTitle, a.Points(), a.Dropped)
		}
		fmt.Fprintln(out)
	}
	sums, err := dataset.Summarize(ds)
	if err != nil {
		return errors.Wrap(err, "summarize")
	}
	fmt.Fprintf(out, "Penguins by species (%d rows)\n", ds.Len())
	render.WriteCounts(out, ds.Species(), dataset.CountBySpecies(ds))
	fmt.Fprintln(out)
	render.WriteSummary(out, sums)
	return nil
}
