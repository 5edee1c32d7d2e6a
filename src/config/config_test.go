package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/jfrummel/cintel-02-data/src/dataset"
	"github.com/jfrummel/cintel-02-data/src/params"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestParse_Defaults(t *testing.T) {
	c, err := Parse(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.LogLevel != "info" || c.Width != DefaultWidth || c.Height != DefaultHeight {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.Title != DefaultTitle || c.LinkURL != DefaultLinkURL || c.LinkText != DefaultLinkText {
		t.Fatalf("page text: %+v", c)
	}
	if !c.Initial.Equal(params.Defaults()) {
		t.Fatalf("initial state %+v", c.Initial)
	}
	if c.DumpTables || c.ScreenshotsDir != "" || c.DataPath != "" {
		t.Fatalf("headless modes should be off: %+v", c)
	}
}

func TestParse_FlagsAndEnv(t *testing.T) {
	t.Setenv("PENGUINBOARD_LOG_LEVEL", "debug")
	t.Setenv("PENGUINBOARD_WIDTH", "1600")
	c, err := Parse([]string{"--height", "700", "--dump-tables", "--screenshots", "/tmp/shots"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.LogLevel != "debug" || c.Width != 1600 || c.Height != 700 {
		t.Fatalf("unexpected: %+v", c)
	}
	if !c.DumpTables || c.ScreenshotsDir != "/tmp/shots" {
		t.Fatalf("headless flags: %+v", c)
	}
	// the command line wins over the environment
	c, err = Parse([]string{"--log-level", "error"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.LogLevel != "error" {
		t.Fatalf("log level=%s", c.LogLevel)
	}
}

func TestParse_Rejects(t *testing.T) {
	for _, args := range [][]string{
		{"--log-level", "trace"},
		{"--width", "wide"},
		{"--width", "0"},
		{"--no-such-flag"},
	} {
		if _, err := Parse(args); err == nil {
			t.Fatalf("%v: expected error", args)
		}
	}
}

func TestParse_DefaultsFile(t *testing.T) {
	p := writeFile(t, "defaults.yaml", `
title: Penguins at a glance
attribute: body_mass_g
plotly_bins: 0
seaborn_bins: 12
species: [Gentoo, Adelie]
`)
	c, err := Parse([]string{"--defaults", p})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Title != "Penguins at a glance" || c.LinkText != DefaultLinkText {
		t.Fatalf("page text: %+v", c)
	}
	s := c.Initial
	if s.Attribute != dataset.ColBodyMass || s.PlotlyBins != 0 || s.SeabornBins != 12 {
		t.Fatalf("state %+v", s)
	}
	if len(s.Species) != 2 || s.Species[0] != "Adelie" || s.Species[1] != "Gentoo" {
		t.Fatalf("species %v", s.Species)
	}
}

func TestParse_DefaultsFileEmptySpecies(t *testing.T) {
	p := writeFile(t, "defaults.yaml", "species: []\n")
	c, err := Parse([]string{"--defaults", p})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(c.Initial.Species) != 0 {
		t.Fatalf("species %v", c.Initial.Species)
	}
}

func TestParse_DefaultsFileInvalid(t *testing.T) {
	cases := []struct {
		body string
		want error
	}{
		{"seaborn_bins: 101\n", params.ErrOutOfRange},
		{"attribute: island\n", params.ErrNotAChoice},
		{"species: [Emperor]\n", params.ErrNotAChoice},
	}
	for _, c := range cases {
		p := writeFile(t, "defaults.yaml", c.body)
		if _, err := Parse([]string{"--defaults", p}); errors.Cause(err) != c.want {
			t.Fatalf("%q: err=%v want %v", c.body, err, c.want)
		}
	}
	p := writeFile(t, "defaults.yaml", "colour: blue\n")
	if _, err := Parse([]string{"--defaults", p}); err == nil {
		t.Fatalf("unknown key accepted")
	}
	if _, err := Parse([]string{"--defaults", filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatalf("missing file accepted")
	}
}

func TestLoadDefaults_Empty(t *testing.T) {
	d, err := LoadDefaults(writeFile(t, "empty.yaml", ""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if d.PlotlyBins != nil || d.Species != nil {
		t.Fatalf("unexpected values %+v", d)
	}
}

func TestParseReader(t *testing.T) {
	t.Setenv("PENGUINBOARD_DATA", "/data/penguins.csv")
	c, err := ParseReader([]string{"--log-level", "warn"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.DataPath != "/data/penguins.csv" || c.LogLevel != "warn" {
		t.Fatalf("unexpected: %+v", c)
	}
	if _, err := ParseReader([]string{"--screenshots", "x"}); err == nil {
		t.Fatalf("dashboard flag accepted by reader")
	}
}
