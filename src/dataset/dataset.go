// Package dataset holds the penguin measurement table shown by the dashboard.
//
// The table is loaded once at process start (embedded CSV or a user supplied file in the
// palmerpenguins layout) and is read-only afterwards: every accessor hands out copies so no
// view can write back into it.
package dataset

import (
	_ "embed"
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Column names, as they appear in the palmerpenguins CSV header.
const (
	ColSpecies       = "species"
	ColIsland        = "island"
	ColBillLength    = "bill_length_mm"
	ColBillDepth     = "bill_depth_mm"
	ColFlipperLength = "flipper_length_mm"
	ColBodyMass      = "body_mass_g"
	ColSex           = "sex"
	ColYear          = "year"
)

// missing is the CSV marker for an unrecorded value.
const missing = "NA"

var (
	// Columns is the display order of all columns.
	Columns = []string{ColSpecies, ColIsland, ColBillLength, ColBillDepth, ColFlipperLength, ColBodyMass, ColSex, ColYear}
	// NumericAttributes are the four measurement columns a user can pick.
	NumericAttributes = []string{ColBillLength, ColBillDepth, ColFlipperLength, ColBodyMass}
	// SpeciesChoices is the fixed species set offered by the species selector.
	SpeciesChoices = []string{"Adelie", "Gentoo", "Chinstrap"}
)

// ErrUnknownAttribute is returned when a numeric column is requested that the table does not have.
var ErrUnknownAttribute = errors.New("unknown numeric attribute")

//go:embed penguins.csv
var embedded string

// Penguin is one observed animal. Unrecorded measurements are NaN, an unrecorded sex is "".
type Penguin struct {
	Species         string
	Island          string
	BillLengthMM    float64
	BillDepthMM     float64
	FlipperLengthMM float64
	BodyMassG       float64
	Sex             string
	Year            int
}

// Measure returns the value of a numeric attribute.
func (p Penguin) Measure(attr string) (float64, error) {
	switch attr {
	case ColBillLength:
		return p.BillLengthMM, nil
	case ColBillDepth:
		return p.BillDepthMM, nil
	case ColFlipperLength:
		return p.FlipperLengthMM, nil
	case ColBodyMass:
		return p.BodyMassG, nil
	}
	return math.NaN(), errors.Wrapf(ErrUnknownAttribute, "%q", attr)
}

// Table is the immutable penguin table.
type Table struct {
	rows    []Penguin
	species []string
}

// Load parses the embedded Palmer Penguins data (all 344 rows).
func Load() (*Table, error) {
	t, err := Parse(strings.NewReader(embedded))
	if err != nil {
		return nil, errors.Wrap(err, "embedded dataset")
	}
	return t, nil
}

// LoadFile parses a penguins CSV from disk.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open dataset")
	}
	defer f.Close()
	t, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return t, nil
}

// Parse reads a CSV with a header row. Columns are addressed by name; species and the four
// measurements are required, island/sex/year are optional.
func Parse(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty dataset")
	}
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}
	idx := map[string]int{}
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, req := range append([]string{ColSpecies}, NumericAttributes...) {
		if _, ok := idx[req]; !ok {
			return nil, errors.Errorf("missing required column %q", req)
		}
	}
	known := map[string]bool{}
	for _, s := range SpeciesChoices {
		known[s] = true
	}

	t := &Table{}
	seen := map[string]bool{}
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		field := func(col string) string {
			i, ok := idx[col]
			if !ok || i >= len(rec) {
				return missing
			}
			return strings.TrimSpace(rec[i])
		}
		p := Penguin{Species: field(ColSpecies), Island: field(ColIsland), Sex: field(ColSex)}
		if !known[p.Species] {
			return nil, errors.Errorf("line %d: unknown species %q", line, p.Species)
		}
		if p.Island == missing {
			p.Island = ""
		}
		if p.Sex == missing {
			p.Sex = ""
		}
		for _, m := range []struct {
			col string
			dst *float64
		}{
			{ColBillLength, &p.BillLengthMM},
			{ColBillDepth, &p.BillDepthMM},
			{ColFlipperLength, &p.FlipperLengthMM},
			{ColBodyMass, &p.BodyMassG},
		} {
			v, err := parseMeasure(field(m.col))
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: %s", line, m.col)
			}
			*m.dst = v
		}
		if y := field(ColYear); y != missing && y != "" {
			p.Year, err = strconv.Atoi(y)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: %s", line, ColYear)
			}
		}
		if !seen[p.Species] {
			seen[p.Species] = true
			t.species = append(t.species, p.Species)
		}
		t.rows = append(t.rows, p)
	}
	return t, nil
}

func parseMeasure(s string) (float64, error) {
	if s == missing || s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Row returns a copy of row i.
func (t *Table) Row(i int) Penguin { return t.rows[i] }

// Rows returns a copy of all rows.
func (t *Table) Rows() []Penguin {
	out := make([]Penguin, len(t.rows))
	copy(out, t.rows)
	return out
}

// Species lists the distinct species in order of first appearance.
func (t *Table) Species() []string {
	out := make([]string, len(t.species))
	copy(out, t.species)
	return out
}

// Column returns a copy of one numeric column, NaN included.
func (t *Table) Column(attr string) ([]float64, error) {
	out := make([]float64, len(t.rows))
	for i, p := range t.rows {
		v, err := p.Measure(attr)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Cell formats one value for display. Missing values render as "NA".
func (t *Table) Cell(i int, col string) string {
	p := t.rows[i]
	switch col {
	case ColSpecies:
		return p.Species
	case ColIsland:
		return orNA(p.Island)
	case ColSex:
		return orNA(p.Sex)
	case ColYear:
		if p.Year == 0 {
			return missing
		}
		return strconv.Itoa(p.Year)
	}
	v, err := p.Measure(col)
	if err != nil {
		return ""
	}
	if math.IsNaN(v) {
		return missing
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orNA(s string) string {
	if s == "" {
		return missing
	}
	return s
}
