// Package reactive keeps the dashboard outputs in step with the sidebar inputs.
//
// Every output declares the parameters it reads. Changing a parameter recomputes exactly the
// outputs that read it; all other outputs keep their last result. The Composer is not safe for
// concurrent use and is driven from the UI event goroutine.
package reactive

import (
	"runtime/debug"
	"time"

	"github.com/pkg/errors"

	"github.com/jfrummel/cintel-02-data/src/logging"
	"github.com/jfrummel/cintel-02-data/src/params"
	"github.com/jfrummel/cintel-02-data/src/views"
)

var (
	ErrDuplicateOutput = errors.New("duplicate output id")
	ErrUnknownOutput   = errors.New("unknown output id")
)

// Result is the latest computation of one output. Exactly one of Artifact and Err is set once
// the output has been computed. Revision counts computations of this output.
type Result struct {
	Output   views.OutputID
	Artifact views.Artifact
	Err      error
	Revision int
}

// Subscriber is notified after an output is recomputed.
type Subscriber func(Result)

type output struct {
	def  views.Definition
	res  Result
	subs []Subscriber
}

// Composer owns the parameter state and the cached outputs.
type Composer struct {
	state      params.State
	order      []views.OutputID
	outputs    map[views.OutputID]*output
	dependents map[params.ID][]views.OutputID
}

// New validates the definitions and indexes which outputs read which parameter.
// Nothing is computed until RenderAll.
func New(initial params.State, defs []views.Definition) (*Composer, error) {
	known := map[params.ID]bool{}
	for _, id := range params.All {
		known[id] = true
	}
	c := &Composer{
		state:      initial.Clone(),
		outputs:    map[views.OutputID]*output{},
		dependents: map[params.ID][]views.OutputID{},
	}
	for _, d := range defs {
		if _, dup := c.outputs[d.ID]; dup {
			return nil, errors.Wrapf(ErrDuplicateOutput, "%q", d.ID)
		}
		if d.Compute == nil {
			return nil, errors.Errorf("output %q has no compute function", d.ID)
		}
		seen := map[params.ID]bool{}
		for _, p := range d.Deps {
			if !known[p] {
				return nil, errors.Wrapf(params.ErrUnknownParam, "output %q depends on %q", d.ID, p)
			}
			if seen[p] {
				continue
			}
			seen[p] = true
			c.dependents[p] = append(c.dependents[p], d.ID)
		}
		c.outputs[d.ID] = &output{def: d, res: Result{Output: d.ID}}
		c.order = append(c.order, d.ID)
	}
	return c, nil
}

// RenderAll computes every output once, in definition order.
func (c *Composer) RenderAll() {
	defer logging.TimeTrack(time.Now(), "render all outputs")
	for _, id := range c.order {
		c.recompute(id)
	}
}

// Set changes one parameter. When the value actually changed, the outputs reading it are
// recomputed and their IDs returned in definition order. An invalid value leaves the state and
// every output untouched.
func (c *Composer) Set(id params.ID, v interface{}) ([]views.OutputID, error) {
	changed, err := c.state.Set(id, v)
	if err != nil {
		return nil, err
	}
	if !changed {
		logging.Debugf("%s unchanged, nothing to recompute", id)
		return nil, nil
	}
	deps := c.dependents[id]
	if len(deps) == 0 {
		logging.Debugf("%s changed, no output reads it", id)
		return nil, nil
	}
	out := make([]views.OutputID, 0, len(deps))
	for _, oid := range c.order {
		if contains(deps, oid) {
			c.recompute(oid)
			out = append(out, oid)
		}
	}
	logging.Debugf("%s changed, recomputed %v", id, out)
	return out, nil
}

// Subscribe registers fn for recomputes of output. When the output has already been computed,
// fn is called immediately with the current result.
func (c *Composer) Subscribe(id views.OutputID, fn Subscriber) error {
	o, ok := c.outputs[id]
	if !ok {
		return errors.Wrapf(ErrUnknownOutput, "%q", id)
	}
	o.subs = append(o.subs, fn)
	if o.res.Revision > 0 {
		fn(o.res)
	}
	return nil
}

// Result returns the cached result of one output.
func (c *Composer) Result(id views.OutputID) (Result, bool) {
	o, ok := c.outputs[id]
	if !ok {
		return Result{}, false
	}
	return o.res, true
}

// Dependents lists the outputs reading a parameter, in definition order.
func (c *Composer) Dependents(id params.ID) []views.OutputID {
	var out []views.OutputID
	for _, oid := range c.order {
		if contains(c.dependents[id], oid) {
			out = append(out, oid)
		}
	}
	return out
}

// State returns a copy of the current parameters.
func (c *Composer) State() params.State { return c.state.Clone() }

// Outputs lists output IDs in definition order.
func (c *Composer) Outputs() []views.OutputID {
	return append([]views.OutputID(nil), c.order...)
}

// Header returns the card header declared for an output.
func (c *Composer) Header(id views.OutputID) string {
	if o, ok := c.outputs[id]; ok {
		return o.def.Header
	}
	return ""
}

func (c *Composer) recompute(id views.OutputID) {
	o := c.outputs[id]
	art, err := safeCompute(o.def.Compute, c.state.Clone())
	o.res = Result{Output: id, Revision: o.res.Revision + 1}
	if err != nil {
		logging.Warnf("output %s failed: %v", id, err)
		o.res.Err = err
	} else {
		o.res.Artifact = art
	}
	for _, fn := range o.subs {
		fn(o.res)
	}
}

// safeCompute reports a panicking view as an error.
func safeCompute(fn views.ComputeFunc, s params.State) (art views.Artifact, err error) {
	defer func() {
		if r := recover(); r != nil {
			logging.Debugf("compute panic stack:\n%s", debug.Stack())
			art, err = nil, errors.Errorf("compute panicked: %v", r)
		}
	}()
	art, err = fn(s)
	if err == nil && art == nil {
		err = errors.New("compute returned no artifact")
	}
	return art, err
}

func contains(list []views.OutputID, id views.OutputID) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
