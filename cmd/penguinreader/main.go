package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/jfrummel/cintel-02-data/src/config"
	"github.com/jfrummel/cintel-02-data/src/dataset"
	"github.com/jfrummel/cintel-02-data/src/logging"
	"github.com/jfrummel/cintel-02-data/src/render"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	cfg, err := config.ParseReader(args)
	if err != nil {
		return err
	}
	logging.SetLogLevel(cfg.LogLevel)
	var ds *dataset.Table
	if cfg.DataPath == "" {
		ds, err = dataset.Load()
	} else {
		ds, err = dataset.LoadFile(cfg.DataPath)
	}
	if err != nil {
		return err
	}
	sums, err := dataset.Summarize(ds)
	if err != nil {
		return errors.Wrap(err, "summarize")
	}
	fmt.Fprintf(out, "Total penguins: %d\n", ds.Len())
	render.WriteCounts(out, ds.Species(), dataset.CountBySpecies(ds))
	render.WriteSummary(out, sums)
	return nil
}
