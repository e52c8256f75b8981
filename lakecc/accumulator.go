package lakecc

import (
	"github.com/basinlab/floodcc/cc"
	"github.com/basinlab/floodcc/grid"
)

// Accumulator sums a scalar field per lake and redistributes each lake's
// total back to every member cell — conservative redistribution of a
// quantity across a lake's extent. The labeling runs serially over the
// gathered global grid on rank 0; other ranks only feed and receive data.
type Accumulator struct {
	sub         *grid.Sub
	fill        float64
	initialized bool

	// Rank 0 only: canonical per-cell roots of the global grid and the
	// number of run ids, kept between Init and Accumulate calls.
	labels []int
	nRuns  int
}

// NewAccumulator builds the driver; fill is the "no lake" sentinel.
func NewAccumulator(sub *grid.Sub, fill float64) *Accumulator {
	return &Accumulator{sub: sub, fill: fill}
}

// Init labels the lakes of lakeLevel (any value != fill) and retains the
// labeling for subsequent Accumulate calls. Collective.
func (a *Accumulator) Init(lakeLevel *grid.Field[float64]) error {
	if err := onSub(a.sub, lakeLevel); err != nil {
		return err
	}
	global, err := grid.Gather(lakeLevel)
	if err != nil {
		return err
	}
	if a.sub.Comm().Rank() == 0 {
		d := a.sub.Domain()
		runs, labels, err := cc.LabelGrid(d.Mx, d.My, func(i, j int) bool {
			return global[j*d.Mx+i] != a.fill
		})
		if err != nil {
			return err
		}
		a.labels = labels
		a.nRuns = runs.Len()
	}
	a.initialized = true

	return nil
}

// Accumulate sums in over every lake and writes each lake's total into all
// of its cells in result; non-lake cells receive the fill sentinel.
// Returns ErrNotInitialized before a successful Init. Collective.
func (a *Accumulator) Accumulate(in, result *grid.Field[float64]) error {
	if !a.initialized {
		return ErrNotInitialized
	}
	if err := onSub(a.sub, in, result); err != nil {
		return err
	}

	global, err := grid.Gather(in)
	if err != nil {
		return err
	}
	var out []float64
	if a.sub.Comm().Rank() == 0 {
		sums := make([]float64, a.nRuns)
		for k, lbl := range a.labels {
			if lbl != cc.None {
				sums[lbl] += global[k]
			}
		}
		out = make([]float64, len(a.labels))
		for k, lbl := range a.labels {
			if lbl != cc.None {
				out[k] = sums[lbl]
			} else {
				out[k] = a.fill
			}
		}
	}

	return grid.Scatter(result, out)
}
