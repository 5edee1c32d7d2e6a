package reactive

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"

	"github.com/jfrummel/cintel-02-data/src/dataset"
	"github.com/jfrummel/cintel-02-data/src/params"
	"github.com/jfrummel/cintel-02-data/src/views"
)

func newComposer(t *testing.T) *Composer {
	t.Helper()
	ds, err := dataset.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	c, err := New(params.Defaults(), views.Catalog(ds))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	c.RenderAll()
	return c
}

func revisions(c *Composer) map[views.OutputID]int {
	out := map[views.OutputID]int{}
	for _, id := range c.Outputs() {
		r, _ := c.Result(id)
		out[id] = r.Revision
	}
	return out
}

func TestRenderAll_ComputesEveryOutputOnce(t *testing.T) {
	c := newComposer(t)
	for id, rev := range revisions(c) {
		if rev != 1 {
			t.Fatalf("%s revision=%d want 1", id, rev)
		}
		r, _ := c.Result(id)
		if r.Err != nil || r.Artifact == nil {
			t.Fatalf("%s: err=%v artifact=%v", id, r.Err, r.Artifact)
		}
	}
	if len(c.Outputs()) != 5 {
		t.Fatalf("outputs=%v", c.Outputs())
	}
	if c.Header(views.PlotlyScatterplot) != "Plotly Scatterplot: Species" {
		t.Fatalf("header=%q", c.Header(views.PlotlyScatterplot))
	}
}

func TestSet_RecomputesOnlyDependents(t *testing.T) {
	c := newComposer(t)
	before := revisions(c)

	got, err := c.Set(params.PlotlyBinCount, 40)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if !reflect.DeepEqual(got, []views.OutputID{views.PlotlyHistogram}) {
		t.Fatalf("recomputed %v", got)
	}
	after := revisions(c)
	for id, rev := range after {
		want := before[id]
		if id == views.PlotlyHistogram {
			want++
		}
		if rev != want {
			t.Fatalf("%s revision=%d want %d", id, rev, want)
		}
	}

	got, err = c.Set(params.SeabornBinCount, 10)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if !reflect.DeepEqual(got, []views.OutputID{views.SeabornHistogram}) {
		t.Fatalf("recomputed %v", got)
	}
	r, _ := c.Result(views.SeabornHistogram)
	if h := r.Artifact.(*views.Histogram); h.BinCount() != 10 {
		t.Fatalf("seaborn bins=%d", h.BinCount())
	}
}

// Selecting an attribute or species changes the state but no output reads them.
func TestSet_UnreadParamsRecomputeNothing(t *testing.T) {
	c := newComposer(t)
	before := revisions(c)
	if got, err := c.Set(params.SelectedAttribute, dataset.ColBodyMass); err != nil || len(got) != 0 {
		t.Fatalf("attribute: got=%v err=%v", got, err)
	}
	if got, err := c.Set(params.SelectedSpecies, []string{"Gentoo"}); err != nil || len(got) != 0 {
		t.Fatalf("species: got=%v err=%v", got, err)
	}
	if !reflect.DeepEqual(before, revisions(c)) {
		t.Fatalf("revisions moved: %v -> %v", before, revisions(c))
	}
	s := c.State()
	if s.Attribute != dataset.ColBodyMass || len(s.Species) != 1 || s.Species[0] != "Gentoo" {
		t.Fatalf("state=%+v", s)
	}
}

func TestSet_SameValueRecomputesNothing(t *testing.T) {
	c := newComposer(t)
	got, err := c.Set(params.PlotlyBinCount, params.DefaultPlotlyBins)
	if err != nil || len(got) != 0 {
		t.Fatalf("got=%v err=%v", got, err)
	}
	if r, _ := c.Result(views.PlotlyHistogram); r.Revision != 1 {
		t.Fatalf("revision=%d", r.Revision)
	}
}

func TestSet_InvalidValueLeavesEverything(t *testing.T) {
	c := newComposer(t)
	before := revisions(c)
	if _, err := c.Set(params.SeabornBinCount, 0); errors.Cause(err) != params.ErrOutOfRange {
		t.Fatalf("err=%v", err)
	}
	if c.State().SeabornBins != params.DefaultSeabornBins || !reflect.DeepEqual(before, revisions(c)) {
		t.Fatalf("state or outputs changed on invalid input")
	}
}

// A failing output records its error while the rest of the page keeps working.
func TestSet_ErrorIsolatedToOutput(t *testing.T) {
	c := newComposer(t)
	prevScatter, _ := c.Result(views.PlotlyScatterplot)
	if _, err := c.Set(params.PlotlyBinCount, -3); err != nil {
		t.Fatalf("set: %v", err)
	}
	r, _ := c.Result(views.PlotlyHistogram)
	if errors.Cause(r.Err) != views.ErrInvalidBins || r.Artifact != nil {
		t.Fatalf("plotly result: %+v", r)
	}
	if s, _ := c.Result(views.PlotlyScatterplot); s.Revision != prevScatter.Revision || s.Err != nil {
		t.Fatalf("scatter touched: %+v", s)
	}
	if _, err := c.Set(params.PlotlyBinCount, 30); err != nil {
		t.Fatalf("set: %v", err)
	}
	if r, _ := c.Result(views.PlotlyHistogram); r.Err != nil || r.Artifact == nil {
		t.Fatalf("plotly did not recover: %+v", r)
	}
}

func TestPanicIsCaptured(t *testing.T) {
	defs := []views.Definition{
		{ID: "boom", Deps: []params.ID{params.PlotlyBinCount}, Compute: func(params.State) (views.Artifact, error) {
			panic("kaboom")
		}},
		{ID: "fine", Compute: func(params.State) (views.Artifact, error) {
			return &views.Table{Header: "fine"}, nil
		}},
	}
	c, err := New(params.Defaults(), defs)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	c.RenderAll()
	if r, _ := c.Result("boom"); r.Err == nil {
		t.Fatalf("panic not reported")
	}
	if r, _ := c.Result("fine"); r.Err != nil || r.Artifact.Title() != "fine" {
		t.Fatalf("fine output: %+v", r)
	}
}

func TestSubscribe(t *testing.T) {
	c := newComposer(t)
	var seen []Result
	if err := c.Subscribe(views.SeabornHistogram, func(r Result) { seen = append(seen, r) }); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if len(seen) != 1 || seen[0].Revision != 1 {
		t.Fatalf("initial delivery: %+v", seen)
	}
	if _, err := c.Set(params.PlotlyBinCount, 11); err != nil {
		t.Fatalf("set: %v", err)
	}
	if len(seen) != 1 {
		t.Fatalf("unrelated change notified seaborn subscriber")
	}
	if _, err := c.Set(params.SeabornBinCount, 77); err != nil {
		t.Fatalf("set: %v", err)
	}
	if len(seen) != 2 || seen[1].Revision != 2 {
		t.Fatalf("after change: %+v", seen)
	}
	if err := c.Subscribe("nope", func(Result) {}); errors.Cause(err) != ErrUnknownOutput {
		t.Fatalf("unknown output: %v", err)
	}
}

func TestNew_Validation(t *testing.T) {
	compute := func(params.State) (views.Artifact, error) { return &views.Table{}, nil }
	if _, err := New(params.Defaults(), []views.Definition{
		{ID: "a", Compute: compute}, {ID: "a", Compute: compute},
	}); errors.Cause(err) != ErrDuplicateOutput {
		t.Fatalf("duplicate: %v", err)
	}
	if _, err := New(params.Defaults(), []views.Definition{
		{ID: "a", Deps: []params.ID{"colour"}, Compute: compute},
	}); errors.Cause(err) != params.ErrUnknownParam {
		t.Fatalf("unknown param: %v", err)
	}
	if _, err := New(params.Defaults(), []views.Definition{{ID: "a"}}); err == nil {
		t.Fatalf("missing compute accepted")
	}
}

func TestDependents(t *testing.T) {
	c := newComposer(t)
	if d := c.Dependents(params.PlotlyBinCount); !reflect.DeepEqual(d, []views.OutputID{views.PlotlyHistogram}) {
		t.Fatalf("plotly dependents=%v", d)
	}
	if d := c.Dependents(params.SelectedSpecies); len(d) != 0 {
		t.Fatalf("species dependents=%v", d)
	}
}
