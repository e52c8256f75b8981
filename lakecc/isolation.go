package lakecc

import (
	"github.com/basinlab/floodcc/cc"
	"github.com/basinlab/floodcc/grid"
)

// Isolation finds ice-covered spots that have no path of thin ice to the
// outer edge of the domain. Foreground is "ice thinner than the threshold,
// or already connected"; the domain margin seeds the sink, so any foreground
// component NOT unioned with the sink is an isolated spot.
type Isolation struct {
	sub       *grid.Sub
	thk       *grid.Field[float64]
	threshold float64
	mask      *grid.Field[int]
	eng       *cc.Engine
}

// NewIsolation builds the driver for the given ice thickness field and
// thin-ice threshold.
//
// Collective: seeds the run mask and exchanges its ghost margin.
func NewIsolation(sub *grid.Sub, thk *grid.Field[float64], threshold float64) (*Isolation, error) {
	if err := onSub(sub, thk); err != nil {
		return nil, err
	}

	x := &Isolation{
		sub:       sub,
		thk:       thk,
		threshold: threshold,
		mask:      grid.NewField[int](sub),
	}
	for j := sub.Y0; j < sub.Y0+sub.NY; j++ {
		for i := sub.X0; i < sub.X0+sub.NX; i++ {
			if sub.AtDomainEdge(i, j) {
				x.mask.Set(i, j, cc.Sink)
			}
		}
	}
	if err := x.mask.Exchange(); err != nil {
		return nil, err
	}

	eng, err := cc.New(sub, x.mask, x.foreground, cc.WithSink())
	if err != nil {
		return nil, err
	}
	x.eng = eng

	return x, nil
}

func (x *Isolation) foreground(i, j int) bool {
	return x.mask.At(i, j) > 0 || x.thk.At(i, j) < x.threshold
}

// FindIsolated writes 1 into every cell of a component with no thin-ice path
// to the domain edge and 0 everywhere else. Collective.
func (x *Isolation) FindIsolated(result *grid.Field[int]) error {
	if err := onSub(x.sub, result); err != nil {
		return err
	}
	runs, err := x.eng.Compute()
	if err != nil {
		return err
	}

	result.Fill(0)
	runs.ForEach(func(_ int, r cc.Run, root int) {
		if root > cc.Sink {
			for n := 0; n < r.Len; n++ {
				result.Set(r.X+n, r.Y, 1)
			}
		}
	})

	return nil
}
