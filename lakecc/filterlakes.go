package lakecc

import (
	"github.com/basinlab/floodcc/cc"
	"github.com/basinlab/floodcc/grid"
)

// FilterLakes erases spurious small lakes from a labeled lake-level field.
// A lake survives only if at least one of its cells has nFilter or more
// same-lake 4-neighbors; one qualifying witness anywhere keeps the whole
// lake, even when the witness lies on a different rank than most of the lake.
type FilterLakes struct {
	sub      *grid.Sub
	fill     float64
	mask     *grid.Field[int]
	validity *cc.Validity
	eng      *cc.Engine
}

// NewFilterLakes builds the driver; fill is the "no lake" sentinel.
func NewFilterLakes(sub *grid.Sub, fill float64) (*FilterLakes, error) {
	f := &FilterLakes{
		sub:      sub,
		fill:     fill,
		mask:     grid.NewField[int](sub),
		validity: cc.NewValidity(sub),
	}
	eng, err := cc.New(sub, f.mask, f.foreground, cc.WithDecorators(f.validity))
	if err != nil {
		return nil, err
	}
	f.eng = eng

	return f, nil
}

// foreground is "cell belongs to a previously labeled lake" (seeded as 2, so
// both seeds and painted labels test as > Sink).
func (f *FilterLakes) foreground(i, j int) bool {
	return f.mask.At(i, j) > cc.Sink
}

// Filter erases from lakeLevel every lake in which no cell reaches nFilter
// same-lake 4-neighbors; erased cells are set to the fill sentinel.
// Returns ErrNeighborThreshold for nFilter outside [0, 4]. Collective.
func (f *FilterLakes) Filter(nFilter int, lakeLevel *grid.Field[float64]) error {
	if nFilter < 0 || nFilter > 4 {
		return ErrNeighborThreshold
	}
	if err := onSub(f.sub, lakeLevel); err != nil {
		return err
	}

	sub := f.sub
	for j := sub.Y0; j < sub.Y0+sub.NY; j++ {
		for i := sub.X0; i < sub.X0+sub.NX; i++ {
			seed := 0
			if lakeLevel.At(i, j) != f.fill {
				seed = 2
			}
			f.mask.Set(i, j, seed)
		}
	}
	if err := f.mask.Exchange(); err != nil {
		return err
	}
	// Neighbor counting reads across rank boundaries through the halo.
	if err := lakeLevel.Exchange(); err != nil {
		return err
	}
	witness := f.validity.Mask()
	for j := sub.Y0; j < sub.Y0+sub.NY; j++ {
		for i := sub.X0; i < sub.X0+sub.NX; i++ {
			n := 0
			if lakeLevel.At(i, j) != f.fill {
				st := lakeLevel.Star(i, j)
				for _, v := range [4]float64{st.N, st.E, st.S, st.W} {
					if v != f.fill {
						n++
					}
				}
			}
			w := 0
			if n >= nFilter {
				w = 1
			}
			witness.Set(i, j, w)
		}
	}

	runs, err := f.eng.Compute()
	if err != nil {
		return err
	}
	runs.ForEach(func(_ int, r cc.Run, root int) {
		if !f.validity.Valid(root) {
			for n := 0; n < r.Len; n++ {
				lakeLevel.Set(r.X+n, r.Y, f.fill)
			}
		}
	})

	return nil
}
