package cc

import (
	"fmt"

	"github.com/basinlab/floodcc/grid"
)

// Engine labels the connected components of a foreground predicate over one
// rank's subdomain and keeps the result consistent across ranks through
// boundary relaxation. An Engine may be reused for many invocations (e.g. a
// sweep over candidate levels); each Compute call allocates a fresh run table
// and resets the decorators.
//
// The run-label field is owned by the caller and persists between
// invocations: drivers seed it (0 background, Sink for exterior-connected
// cells, larger values for pre-occupied foreground) and the label pass
// overwrites foreground cells with canonical roots.
type Engine struct {
	sub       *grid.Sub
	mask      *grid.Field[int]
	fg        Predicate
	sink      bool
	decs      []Decorator
	maxRounds int
	runs      *Runs
}

// New builds an engine over the given subdomain, run-label field and
// foreground predicate.
// Returns ErrNilPredicate if fg is nil, grid.ErrFieldMismatch if the mask
// does not live on sub.
func New(sub *grid.Sub, mask *grid.Field[int], fg Predicate, opts ...Option) (*Engine, error) {
	if fg == nil {
		return nil, ErrNilPredicate
	}
	if mask == nil || mask.Sub() != sub {
		return nil, grid.ErrFieldMismatch
	}
	e := &Engine{
		sub:  sub,
		mask: mask,
		fg:   fg,
		// Rounds are bounded by the number of subdomain-boundary crossings
		// one component can span, never by the grid extent.
		maxRounds: 4*sub.Partition().Ranks() + 8,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Runs returns the run table of the last Compute call.
func (e *Engine) Runs() *Runs { return e.runs }

// Compute performs one full labeling invocation: local row scan, label pass,
// then synchronized relaxation rounds until no rank reports a change.
// Collective: every rank of the world must call Compute in the same round.
func (e *Engine) Compute() (*Runs, error) {
	e.runs = NewRuns()
	for _, d := range e.decs {
		d.Reset()
	}

	e.scan()
	e.paint()

	for round := 0; ; round++ {
		var (
			changed bool
			err     error
		)
		if round >= e.maxRounds {
			err = fmt.Errorf("%w after %d rounds", ErrNoConvergence, round)
		} else if err = e.exchange(); err == nil {
			changed = e.sweepMargins()
		}
		// Failures ride the same collective as the change flag, so every
		// rank leaves the loop in the same round instead of deadlocking.
		changed, err = e.sub.Comm().ReduceChange(changed, err)
		if err != nil {
			return nil, err
		}
		if !changed {
			return e.runs, nil
		}
		e.paint()
	}
}

// scan walks the owned rows in row-major order, building maximal runs and
// unioning each new cell's run with the already-labeled run directly south of
// it. Vertical connectivity is captured incrementally; previous rows are
// never revisited. Sink-seeded cells union their run into the reserved Sink.
func (e *Engine) scan() {
	s := e.sub
	for j := s.Y0; j < s.Y0+s.NY; j++ {
		cur := None
		for i := s.X0; i < s.X0+s.NX; i++ {
			if !e.fg(i, j) {
				e.mask.Set(i, j, None)
				cur = None
				continue
			}
			sinkSeed := e.sink && e.mask.At(i, j) == Sink

			// The southern neighbor is consulted only inside the owned
			// range; runs across the rank boundary merge during relaxation.
			south := None
			if j > s.Y0 {
				south = e.mask.At(i, j-1)
			}

			if cur == None {
				cur = e.runs.NewRun(i, j)
				for _, d := range e.decs {
					d.NewRun(cur, i, j)
				}
			} else {
				e.runs.Extend(cur)
				root := e.runs.Root(cur)
				for _, d := range e.decs {
					d.Extend(root, i, j)
				}
			}
			if south != None {
				e.union(cur, south)
			}
			if sinkSeed {
				e.union(cur, Sink)
			}
			e.mask.Set(i, j, cur)
		}
	}
}

// union merges two runs' components and runs every decorator's combine hook.
func (e *Engine) union(a, b int) {
	kept, absorbed := e.runs.Union(a, b)
	if kept == absorbed {
		return
	}
	for _, d := range e.decs {
		d.Merge(kept, absorbed)
	}
}

// paint resolves every run to its canonical root and writes roots into the
// run-label field and attributes into the decorator fields, so the next halo
// exchange carries meaningful values instead of bare local ids.
func (e *Engine) paint() {
	e.runs.ForEach(func(id int, r Run, root int) {
		for n := 0; n < r.Len; n++ {
			e.mask.Set(r.X+n, r.Y, root)
		}
		for _, d := range e.decs {
			d.Paint(root, r.X, r.Y, r.Len)
		}
	})
}

// exchange swaps the ghost margins of the run-label field and every
// decorator field. Collective.
func (e *Engine) exchange() error {
	if err := e.mask.Exchange(); err != nil {
		return err
	}
	for _, d := range e.decs {
		if err := d.Exchange(); err != nil {
			return err
		}
	}

	return nil
}

// sweepMargins re-examines the owned edge ring against the freshly exchanged
// ghost margin and reports whether any union or attribute change occurred.
func (e *Engine) sweepMargins() bool {
	s := e.sub
	_, hasW := s.West()
	_, hasE := s.East()
	_, hasS := s.South()
	_, hasN := s.North()

	top, right := s.Y0+s.NY-1, s.X0+s.NX-1
	changed := false
	for j := s.Y0; j <= top; j++ {
		south := hasS && j == s.Y0
		north := hasN && j == top
		if south || north {
			for i := s.X0; i <= right; i++ {
				changed = e.visitMargin(i, j, north, hasE && i == right, south, hasW && i == s.X0) || changed
			}
			continue
		}
		if right == s.X0 {
			if hasW || hasE {
				changed = e.visitMargin(s.X0, j, false, hasE, false, hasW) || changed
			}
			continue
		}
		if hasW {
			changed = e.visitMargin(s.X0, j, false, false, false, true) || changed
		}
		if hasE {
			changed = e.visitMargin(right, j, false, true, false, false) || changed
		}
	}

	return changed
}

// visitMargin handles one owned edge cell: direction flags say which sides
// cross to another rank. Flags are narrowed to sides whose ghost neighbor is
// foreground; the sink rule and the decorators only ever see foreground
// pairs.
func (e *Engine) visitMargin(i, j int, north, east, south, west bool) bool {
	label := e.mask.At(i, j)
	if label == None {
		return false
	}
	root := e.runs.Root(label)

	st := e.mask.Star(i, j)
	north = north && st.N != None
	east = east && st.E != None
	south = south && st.S != None
	west = west && st.W != None
	if !north && !east && !south && !west {
		return false
	}

	changed := false
	if e.sink && root > Sink &&
		((north && st.N == Sink) || (east && st.E == Sink) ||
			(south && st.S == Sink) || (west && st.W == Sink)) {
		e.union(root, Sink)
		root = Sink
		changed = true
	}
	for _, d := range e.decs {
		changed = d.Margin(root, i, j, north, east, south, west) || changed
	}

	return changed
}
