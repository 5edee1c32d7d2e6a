// Package config reads the command line, the PENGUINBOARD_* environment and the optional YAML
// defaults file into one validated Config.
package config

import (
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kingpin/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/jfrummel/cintel-02-data/src/params"
)

const (
	DefaultTitle    = "Jeremy's Penguin Interactive App"
	DefaultLinkText = "Jeremy's GitHub"
	DefaultLinkURL  = "https://github.com/jfrummel/cintel-02-data"

	DefaultWidth  = 1280
	DefaultHeight = 900
)

// Config is the resolved process configuration.
type Config struct {
	LogLevel       string
	DataPath       string
	DefaultsPath   string
	ScreenshotsDir string
	DumpTables     bool
	Width          int
	Height         int

	Title    string
	LinkText string
	LinkURL  string
	// Initial holds the starting widget values.
	Initial params.State
}

// Defaults is the layout of the YAML defaults file. Every key is optional.
type Defaults struct {
	Title       string    `yaml:"title"`
	LinkText    string    `yaml:"link_text"`
	LinkURL     string    `yaml:"link_url"`
	Attribute   string    `yaml:"attribute"`
	PlotlyBins  *int      `yaml:"plotly_bins"`
	SeabornBins *int      `yaml:"seaborn_bins"`
	Species     *[]string `yaml:"species"`
}

func newApp(name, help string, c *Config) *kingpin.Application {
	app := kingpin.New(name, help)
	app.Flag("log-level", "Log level: debug, info, warn, error.").
		Envar("PENGUINBOARD_LOG_LEVEL").Default("info").
		EnumVar(&c.LogLevel, "debug", "info", "warn", "warning", "error")
	app.Flag("data", "Penguins CSV to load instead of the embedded copy.").
		Envar("PENGUINBOARD_DATA").StringVar(&c.DataPath)
	return app
}

// Parse reads the dashboard configuration from args and the environment.
func Parse(args []string) (*Config, error) {
	c := &Config{}
	app := newApp("penguinboard", "Interactive Palmer Penguins dashboard.", c)
	app.Flag("defaults", "YAML file with initial widget values and page text.").
		Envar("PENGUINBOARD_DEFAULTS").StringVar(&c.DefaultsPath)
	app.Flag("screenshots", "Render every output into this directory and exit.").
		Envar("PENGUINBOARD_SCREENSHOTS").StringVar(&c.ScreenshotsDir)
	app.Flag("dump-tables", "Print the table views and a dataset summary to stdout and exit.").
		Envar("PENGUINBOARD_DUMP_TABLES").BoolVar(&c.DumpTables)
	app.Flag("width", "Window width in pixels.").
		Envar("PENGUINBOARD_WIDTH").Default(strconv.Itoa(DefaultWidth)).IntVar(&c.Width)
	app.Flag("height", "Window height in pixels.").
		Envar("PENGUINBOARD_HEIGHT").Default(strconv.Itoa(DefaultHeight)).IntVar(&c.Height)
	if _, err := app.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parse flags")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return nil, errors.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	c.Title, c.LinkText, c.LinkURL = DefaultTitle, DefaultLinkText, DefaultLinkURL
	c.Initial = params.Defaults()
	if c.DefaultsPath == "" {
		return c, nil
	}
	d, err := LoadDefaults(c.DefaultsPath)
	if err != nil {
		return nil, err
	}
	if err := c.apply(d); err != nil {
		return nil, errors.Wrapf(err, "defaults file %s", c.DefaultsPath)
	}
	return c, nil
}

// ParseReader reads the subset of flags the reader CLI understands.
func ParseReader(args []string) (*Config, error) {
	c := &Config{}
	app := newApp("penguinreader", "Print a summary of the penguins dataset.", c)
	if _, err := app.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parse flags")
	}
	return c, nil
}

// LoadDefaults reads a YAML defaults file. Unknown keys are rejected.
func LoadDefaults(path string) (*Defaults, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open defaults")
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	d := &Defaults{}
	if err := dec.Decode(d); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return d, nil
}

// apply overlays file values on c, validating them the way the widgets would.
func (c *Config) apply(d *Defaults) error {
	if d.Title != "" {
		c.Title = d.Title
	}
	if d.LinkText != "" {
		c.LinkText = d.LinkText
	}
	if d.LinkURL != "" {
		c.LinkURL = d.LinkURL
	}
	s := c.Initial.Clone()
	if d.Attribute != "" {
		if _, err := s.Set(params.SelectedAttribute, d.Attribute); err != nil {
			return err
		}
	}
	if d.PlotlyBins != nil {
		if _, err := s.Set(params.PlotlyBinCount, *d.PlotlyBins); err != nil {
			return err
		}
	}
	if d.SeabornBins != nil {
		if _, err := s.Set(params.SeabornBinCount, *d.SeabornBins); err != nil {
			return err
		}
	}
	if d.Species != nil {
		if _, err := s.Set(params.SelectedSpecies, *d.Species); err != nil {
			return err
		}
	}
	c.Initial = s
	return nil
}
